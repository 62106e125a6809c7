// Package dispatcherservice routes role-scoped operations to the owning
// modules. It is the seam between whatever shell drives the platform and the
// marketplace core: the shell resolves who is calling, the dispatcher decides
// what that caller may do.
package dispatcherservice
