package dto

// SaveSourceLinkRequest: payload for registering a spreadsheet or Drive
// folder source against the current disaster
type SaveSourceLinkRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=dmt_sheet infographic_folder report_folder"`
	Title string `json:"title"`
	URL   string `json:"url" binding:"required,url"`
}
