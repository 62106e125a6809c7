package policy

import (
	"tradepost/contexts/identity-access/dispatcher-service/ports"
	directoryports "tradepost/contexts/identity-access/user-directory/ports"
)

// Table maps each role to the set of operations it may invoke.
type Table map[directoryports.Role]map[ports.Operation]struct{}

// Default returns the capability table for the three shipped roles.
// Browsing the catalog is the one operation every role shares.
func Default() Table {
	return Table{
		directoryports.RoleSeller: grant(
			ports.OpViewProducts,
			ports.OpAddProduct,
			ports.OpUpdateProduct,
			ports.OpDeleteProduct,
			ports.OpSubmitSellerFeedback,
			ports.OpMyAverageRating,
			ports.OpSubscribe,
		),
		directoryports.RoleBuyer: grant(
			ports.OpViewProducts,
			ports.OpSearchByName,
			ports.OpSearchByCategory,
			ports.OpSearchByMaxPrice,
			ports.OpPlaceOrder,
			ports.OpCancelOrder,
			ports.OpTrackOrder,
			ports.OpOrderHistory,
			ports.OpSubmitBuyerFeedback,
			ports.OpMyAverageRating,
			ports.OpSubscribe,
		),
		directoryports.RoleAdmin: grant(
			ports.OpViewProducts,
			ports.OpRegisterUser,
			ports.OpUserDetails,
			ports.OpProductCount,
			ports.OpProductFeedback,
			ports.OpSellerFeedback,
		),
	}
}

func (t Table) Allows(role directoryports.Role, op ports.Operation) bool {
	ops, ok := t[role]
	if !ok {
		return false
	}
	_, ok = ops[op]
	return ok
}

// Known reports whether any role is granted the operation.
func (t Table) Known(op ports.Operation) bool {
	for _, ops := range t {
		if _, ok := ops[op]; ok {
			return true
		}
	}
	return false
}

func grant(ops ...ports.Operation) map[ports.Operation]struct{} {
	set := make(map[ports.Operation]struct{}, len(ops))
	for _, op := range ops {
		set[op] = struct{}{}
	}
	return set
}
