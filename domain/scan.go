package domain

import (
	"errors"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
)

var (
	MessageSuccessLookupBarcode = "product found"
	MessageSuccessConfirmScan   = "scanned product saved"
	MessageSuccessGetCapability = "scan capability retrieved"

	MessageFailedLookupBarcode = "failed to look up barcode"
	MessageFailedConfirmScan   = "failed to save scanned product"
	MessageProductNotFound     = "product not in database, keep scanning"

	ErrProductNotFound = errors.New("product not found in database")
	ErrLookupFailed    = errors.New("product lookup service unreachable")
)

type (
	LookupBarcodeRequest struct {
		Barcode string `json:"barcode" validate:"required"`
	}

	LookupBarcodeResponse struct {
		Barcode     string            `json:"barcode"`
		Name        string            `json:"name"`
		Category    entities.Category `json:"category"`
		RawCategory string            `json:"raw_category"`
		Quantity    string            `json:"quantity"`
		Unit        string            `json:"unit"`
		Icon        string            `json:"icon"`
	}

	ConfirmScanRequest struct {
		Name       string `json:"name" validate:"required"`
		Category   string `json:"category" validate:"required"`
		Quantity   string `json:"quantity" validate:"required"`
		Unit       string `json:"unit" validate:"required"`
		ExpiryDate string `json:"expiry_date,omitempty"` // defaults to 3 days out
	}

	CapabilityResponse struct {
		Scanning string `json:"scanning"` // supported | unsupported | permission_pending
	}
)
