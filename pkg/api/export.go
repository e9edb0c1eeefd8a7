package api

type ExportProductRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Mode      string `json:"mode" validate:"required,oneof=card chart"`
}

// ExportProductResponse carries the PNG; Data is base64 on the wire.
type ExportProductResponse struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Data        []byte `json:"data"`
}
