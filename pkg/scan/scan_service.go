package scan

import (
	"context"
	"time"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/inventory"
)

// scannedExpiryDays is the default shelf life assumed for a scanned
// product when the user does not pick a date.
const scannedExpiryDays = 3

type (
	ScanService interface {
		Capability(ctx context.Context) domain.CapabilityResponse
		Lookup(ctx context.Context, req domain.LookupBarcodeRequest) (domain.LookupBarcodeResponse, error)
		Confirm(ctx context.Context, req domain.ConfirmScanRequest) (domain.FoodItemResponse, error)
	}

	scanService struct {
		productLookup    ProductLookup
		inventoryService inventory.InventoryService
		device           CaptureDevice
	}
)

func NewScanService(productLookup ProductLookup, inventoryService inventory.InventoryService, device CaptureDevice) ScanService {
	return &scanService{
		productLookup:    productLookup,
		inventoryService: inventoryService,
		device:           device,
	}
}

func (s *scanService) Capability(ctx context.Context) domain.CapabilityResponse {
	return domain.CapabilityResponse{Scanning: string(s.device.Capability(ctx))}
}

func (s *scanService) Lookup(ctx context.Context, req domain.LookupBarcodeRequest) (domain.LookupBarcodeResponse, error) {
	product, err := s.productLookup.Lookup(ctx, req.Barcode)
	if err != nil {
		return domain.LookupBarcodeResponse{}, err
	}

	category := entities.ClassifyExternalCategory(product.RawCategory)
	quantity, unit := parseQuantity(product.Quantity)

	return domain.LookupBarcodeResponse{
		Barcode:     req.Barcode,
		Name:        product.Name,
		Category:    category,
		RawCategory: product.RawCategory,
		Quantity:    quantity,
		Unit:        unit,
		Icon:        category.Icon(),
	}, nil
}

// Confirm saves a user-approved scan through the regular add path.
func (s *scanService) Confirm(ctx context.Context, req domain.ConfirmScanRequest) (domain.FoodItemResponse, error) {
	expiryDate := req.ExpiryDate
	if expiryDate == "" {
		expiryDate = time.Now().AddDate(0, 0, scannedExpiryDays).Format("2006-01-02")
	}

	category := entities.Category(req.Category)
	if !category.Valid() {
		category = entities.ClassifyExternalCategory(req.Category)
	}

	return s.inventoryService.Add(ctx, domain.AddFoodItemRequest{
		Name:       req.Name,
		Category:   string(category),
		ExpiryDate: expiryDate,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Icon:       category.Icon(),
	})
}
