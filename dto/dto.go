package dto

type CreateLinkRequest struct {
	Code string `json:"code"`
	Url  string `json:"url"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type ExportResponse struct {
	FileUrl string `json:"fileUrl"`
}
