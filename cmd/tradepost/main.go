package main

import (
	"context"
	"log"
	"os"

	"tradepost/contexts/identity-access/dispatcher-service/ports"
	directoryports "tradepost/contexts/identity-access/user-directory/ports"
	catalogports "tradepost/contexts/marketplace/catalog-service/ports"
	"tradepost/internal/app/bootstrap"
)

// Process entrypoint.
// Data flow:
// 1) Load config and wire every module in memory.
// 2) Seed the admin account, plus demo participants when enabled.
// 3) Walk a scripted marketplace session through the dispatcher.
func main() {
	app, err := bootstrap.Build()
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	if !app.Config.SeedDemoData {
		app.Logger.Info("platform ready", "event", "platform_ready")
		return
	}
	if err := runDemoSession(context.Background(), app); err != nil {
		app.Logger.Error("demo session failed", "event", "demo_session_failed", "error", err)
		os.Exit(1)
	}
}

// runDemoSession exercises one full seller/buyer/admin round trip so the
// binary shows the platform working without any interactive shell.
func runDemoSession(ctx context.Context, app *bootstrap.App) error {
	admin := ports.Actor{Username: app.Config.AdminUsername, Role: directoryports.RoleAdmin}
	seller := ports.Actor{Username: "ravi_electronics", Role: directoryports.RoleSeller}
	buyer := ports.Actor{Username: "meera", Role: directoryports.RoleBuyer}

	steps := []struct {
		actor ports.Actor
		op    ports.Operation
		args  any
	}{
		{admin, ports.OpRegisterUser, ports.RegisterUserArgs{Username: seller.Username, Password: "pw", Role: "seller", ContactNumber: "98450-11223"}},
		{admin, ports.OpRegisterUser, ports.RegisterUserArgs{Username: buyer.Username, Password: "pw", Role: "buyer"}},
		{seller, ports.OpAddProduct, ports.AddProductArgs{Name: "Ceiling Fan", Model: "Breeze 1200", Category: "Appliances", OriginalPrice: 1500, DiscountedPrice: 1200, Description: "Three-speed ceiling fan", Quantity: 2}},
		{buyer, ports.OpViewProducts, nil},
		{buyer, ports.OpSearchByCategory, ports.SearchArgs{Query: "appli"}},
		{buyer, ports.OpPlaceOrder, ports.PlaceOrderArgs{ProductID: 1}},
		{buyer, ports.OpSubmitBuyerFeedback, ports.BuyerFeedbackArgs{ProductID: 1, Review: "quiet and sturdy", Rating: 4}},
		{buyer, ports.OpMyAverageRating, nil},
		{buyer, ports.OpSubscribe, ports.SubscribeArgs{Plan: "basic", Channel: "gpay"}},
		{seller, ports.OpSubmitSellerFeedback, ports.SellerFeedbackArgs{Review: "listing flow is quick", Rating: 5}},
		{admin, ports.OpUserDetails, nil},
		{admin, ports.OpProductCount, nil},
		{admin, ports.OpSellerFeedback, nil},
	}

	for _, step := range steps {
		result, err := app.Dispatcher.Invoke(ctx, step.actor, step.op, step.args)
		if err != nil {
			return err
		}
		logResult(app, step.actor, step.op, result)
	}
	return nil
}

func logResult(app *bootstrap.App, actor ports.Actor, op ports.Operation, result any) {
	attrs := []any{
		"event", "demo_step_completed",
		"operation", string(op),
		"actor", actor.Username,
		"role", string(actor.Role),
	}
	switch value := result.(type) {
	case []ports.Listing:
		attrs = append(attrs, "listings", len(value))
	case []catalogports.Product:
		attrs = append(attrs, "matches", len(value))
	case int:
		attrs = append(attrs, "count", value)
	case nil:
	default:
		attrs = append(attrs, "result", value)
	}
	app.Logger.Info("demo step", attrs...)
}
