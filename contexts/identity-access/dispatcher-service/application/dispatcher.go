package application

import (
	"context"
	"errors"
	"log/slog"

	domainerrors "tradepost/contexts/identity-access/dispatcher-service/domain/errors"
	"tradepost/contexts/identity-access/dispatcher-service/domain/policy"
	"tradepost/contexts/identity-access/dispatcher-service/ports"
	directoryapp "tradepost/contexts/identity-access/user-directory/application"
	directoryerrors "tradepost/contexts/identity-access/user-directory/domain/errors"
	directoryports "tradepost/contexts/identity-access/user-directory/ports"
	admindashboardapp "tradepost/contexts/internal-ops/admin-dashboard-service/application"
	catalogapp "tradepost/contexts/marketplace/catalog-service/application"
	catalogports "tradepost/contexts/marketplace/catalog-service/ports"
	feedbackapp "tradepost/contexts/marketplace/feedback-service/application"
	feedbackports "tradepost/contexts/marketplace/feedback-service/ports"
	orderapp "tradepost/contexts/marketplace/order-service/application"
	subscriptionapp "tradepost/contexts/marketplace/subscription-service/application"
)

// Dispatcher is the single entry point the shell layer talks to. It checks
// the caller's capability for the requested operation, then routes to the
// owning module. Everything below it trusts the actor identity it passes in.
type Dispatcher struct {
	Policy        policy.Table
	Catalog       catalogapp.Service
	Orders        orderapp.Service
	Feedback      feedbackapp.Service
	Subscriptions subscriptionapp.Service
	Directory     directoryapp.Service
	Dashboard     admindashboardapp.Service
	Logger        *slog.Logger
}

func (d Dispatcher) Invoke(ctx context.Context, actor ports.Actor, op ports.Operation, args any) (any, error) {
	table := d.table()
	if !table.Known(op) {
		return nil, domainerrors.ErrUnknownOperation
	}
	if !table.Allows(actor.Role, op) {
		resolveLogger(d.Logger).Debug("operation denied",
			"event", "dispatch_denied",
			"module", "identity-access/dispatcher-service",
			"layer", "application",
			"operation", string(op),
			"username", actor.Username,
			"role", string(actor.Role),
		)
		return nil, domainerrors.ErrForbidden
	}

	switch op {
	case ports.OpViewProducts:
		return d.listings(ctx)
	case ports.OpAddProduct:
		input, err := argsAs[ports.AddProductArgs](args)
		if err != nil {
			return nil, err
		}
		return d.Catalog.AddProduct(ctx, catalogports.CreateProductInput{
			Name:            input.Name,
			Model:           input.Model,
			Category:        input.Category,
			OriginalPrice:   input.OriginalPrice,
			DiscountedPrice: input.DiscountedPrice,
			Description:     input.Description,
			Owner:           actor.Username,
			Quantity:        input.Quantity,
		})
	case ports.OpUpdateProduct:
		input, err := argsAs[ports.UpdateProductArgs](args)
		if err != nil {
			return nil, err
		}
		return d.Catalog.UpdateProduct(ctx, input.ProductID, catalogports.UpdateProductInput{
			Name:            input.Name,
			Model:           input.Model,
			Category:        input.Category,
			DiscountedPrice: input.DiscountedPrice,
			Quantity:        input.Quantity,
		})
	case ports.OpDeleteProduct:
		input, err := argsAs[ports.DeleteProductArgs](args)
		if err != nil {
			return nil, err
		}
		return nil, d.Catalog.RemoveProduct(ctx, input.ProductID)
	case ports.OpSearchByName:
		input, err := argsAs[ports.SearchArgs](args)
		if err != nil {
			return nil, err
		}
		return d.Catalog.SearchByName(ctx, input.Query)
	case ports.OpSearchByCategory:
		input, err := argsAs[ports.SearchArgs](args)
		if err != nil {
			return nil, err
		}
		return d.Catalog.SearchByCategory(ctx, input.Query)
	case ports.OpSearchByMaxPrice:
		input, err := argsAs[ports.MaxPriceArgs](args)
		if err != nil {
			return nil, err
		}
		return d.Catalog.SearchByMaxPrice(ctx, input.Limit)
	case ports.OpPlaceOrder:
		input, err := argsAs[ports.PlaceOrderArgs](args)
		if err != nil {
			return nil, err
		}
		return d.Orders.PlaceOrder(ctx, actor.Username, input.ProductID)
	case ports.OpCancelOrder:
		input, err := argsAs[ports.OrderArgs](args)
		if err != nil {
			return nil, err
		}
		return d.Orders.CancelOrder(ctx, actor.Username, input.OrderID)
	case ports.OpTrackOrder:
		input, err := argsAs[ports.OrderArgs](args)
		if err != nil {
			return nil, err
		}
		return d.Orders.TrackOrder(ctx, actor.Username, input.OrderID)
	case ports.OpOrderHistory:
		return d.Orders.OrderHistory(ctx, actor.Username)
	case ports.OpSubmitBuyerFeedback:
		input, err := argsAs[ports.BuyerFeedbackArgs](args)
		if err != nil {
			return nil, err
		}
		return nil, d.Feedback.SubmitBuyerFeedback(ctx, actor.Username, input.ProductID, input.Review, input.Rating)
	case ports.OpSubmitSellerFeedback:
		input, err := argsAs[ports.SellerFeedbackArgs](args)
		if err != nil {
			return nil, err
		}
		return nil, d.Feedback.SubmitSellerFeedback(ctx, actor.Username, input.Review, input.Rating)
	case ports.OpMyAverageRating:
		return d.Feedback.AverageRating(ctx, actor.Username, feedbackRole(actor.Role))
	case ports.OpSubscribe:
		input, err := argsAs[ports.SubscribeArgs](args)
		if err != nil {
			return nil, err
		}
		return d.Subscriptions.Process(ctx, actor.Username, input.Plan, input.Channel)
	case ports.OpRegisterUser:
		input, err := argsAs[ports.RegisterUserArgs](args)
		if err != nil {
			return nil, err
		}
		role, _ := directoryports.ParseRole(input.Role)
		return d.Directory.RegisterUser(ctx, directoryports.RegisterUserInput{
			Username:      input.Username,
			Password:      input.Password,
			Role:          role,
			ContactNumber: input.ContactNumber,
		})
	case ports.OpUserDetails:
		return d.Dashboard.UserDetails(ctx)
	case ports.OpProductCount:
		return d.Dashboard.ProductCount(ctx)
	case ports.OpProductFeedback:
		return d.Dashboard.ProductFeedbackReport(ctx)
	case ports.OpSellerFeedback:
		return d.Dashboard.SellerFeedbackReport(ctx)
	default:
		return nil, domainerrors.ErrUnknownOperation
	}
}

// listings joins each product with its seller's contact number. Listings
// whose seller has no directory record keep an empty contact.
func (d Dispatcher) listings(ctx context.Context) ([]ports.Listing, error) {
	products, err := d.Catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	contacts := make(map[string]string, len(products))
	result := make([]ports.Listing, 0, len(products))
	for _, product := range products {
		contact, ok := contacts[product.Owner]
		if !ok {
			user, err := d.Directory.GetUser(ctx, product.Owner)
			switch {
			case err == nil:
				contact = user.ContactNumber
			case errors.Is(err, directoryerrors.ErrUserNotFound):
				contact = ""
			default:
				return nil, err
			}
			contacts[product.Owner] = contact
		}
		result = append(result, ports.Listing{Product: product, SellerContact: contact})
	}
	return result, nil
}

func (d Dispatcher) table() policy.Table {
	if d.Policy != nil {
		return d.Policy
	}
	return policy.Default()
}

func feedbackRole(role directoryports.Role) feedbackports.Role {
	switch role {
	case directoryports.RoleSeller:
		return feedbackports.RoleSeller
	case directoryports.RoleBuyer:
		return feedbackports.RoleBuyer
	default:
		return ""
	}
}

func argsAs[T any](raw any) (T, error) {
	value, ok := raw.(T)
	if !ok {
		var zero T
		return zero, domainerrors.ErrInvalidArguments
	}
	return value, nil
}
