package application

import (
	"context"
	"testing"
	"time"

	directorymemory "tradepost/contexts/identity-access/user-directory/adapters/memory"
	directoryports "tradepost/contexts/identity-access/user-directory/ports"
	catalogadapter "tradepost/contexts/internal-ops/admin-dashboard-service/adapters/catalog"
	directoryadapter "tradepost/contexts/internal-ops/admin-dashboard-service/adapters/directory"
	feedbackadapter "tradepost/contexts/internal-ops/admin-dashboard-service/adapters/feedback"
	catalogmemory "tradepost/contexts/marketplace/catalog-service/adapters/memory"
	catalogports "tradepost/contexts/marketplace/catalog-service/ports"
	feedbackmemory "tradepost/contexts/marketplace/feedback-service/adapters/memory"
	feedbackports "tradepost/contexts/marketplace/feedback-service/ports"
)

func TestUserDetailsSplitsSellersAndBuyers(t *testing.T) {
	users := directorymemory.NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []directoryports.RegisterUserInput{
		{Username: "seller_1", Password: "pw", Role: directoryports.RoleSeller, ContactNumber: "555-0100"},
		{Username: "buyer_a", Password: "pw", Role: directoryports.RoleBuyer},
		{Username: "seller_2", Password: "pw", Role: directoryports.RoleSeller, ContactNumber: "555-0101"},
	}
	for _, input := range seed {
		if _, err := users.RegisterUser(ctx, input, now); err != nil {
			t.Fatalf("seed user failed: %v", err)
		}
	}

	service := Service{Directory: directoryadapter.Directory{Users: users}}
	details, err := service.UserDetails(ctx)
	if err != nil {
		t.Fatalf("user details failed: %v", err)
	}
	if len(details.Sellers) != 2 || len(details.Buyers) != 1 {
		t.Fatalf("expected 2 sellers and 1 buyer, got %d and %d", len(details.Sellers), len(details.Buyers))
	}
	if details.Sellers[0].ContactNumber != "555-0100" {
		t.Fatalf("expected seller contact surfaced, got %q", details.Sellers[0].ContactNumber)
	}
}

func TestProductCountAndFeedbackReport(t *testing.T) {
	catalog := catalogmemory.NewStore()
	ctx := context.Background()

	product, err := catalog.AddProduct(ctx, catalogports.CreateProductInput{
		Name: "Keyboard", Owner: "seller_1", Quantity: 2,
	})
	if err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	if err := catalog.RecordReview(ctx, product.ID, "great", 4); err != nil {
		t.Fatalf("seed review failed: %v", err)
	}

	service := Service{Catalog: catalogadapter.Catalog{Products: catalog}}
	count, err := service.ProductCount(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 product, got %d", count)
	}

	report, err := service.ProductFeedbackReport(ctx)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(report) != 1 || report[0].Rating != 4 || len(report[0].Reviews) != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestSellerFeedbackReportOverallAverage(t *testing.T) {
	ledger := feedbackmemory.NewStore()
	ctx := context.Background()

	records := []feedbackports.SellerFeedback{
		{Seller: "seller_1", Review: "smooth payouts", Rating: 5},
		{Seller: "seller_2", Review: "listing flow is clunky", Rating: 2},
	}
	for _, record := range records {
		if err := ledger.AppendSellerFeedback(ctx, record); err != nil {
			t.Fatalf("seed feedback failed: %v", err)
		}
	}

	service := Service{Feedback: feedbackadapter.Feedback{Ledger: ledger}}
	report, err := service.SellerFeedbackReport(ctx)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if report.Count != 2 || report.OverallAverage != 3.5 {
		t.Fatalf("expected mean 3.5 over 2 records, got %v over %d", report.OverallAverage, report.Count)
	}
}

func TestSellerFeedbackReportNoDataSentinel(t *testing.T) {
	service := Service{Feedback: feedbackadapter.Feedback{Ledger: feedbackmemory.NewStore()}}

	report, err := service.SellerFeedbackReport(context.Background())
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if report.Count != 0 || report.OverallAverage != 0 {
		t.Fatalf("expected empty sentinel report, got %+v", report)
	}
}
