package models

// MockupAsset represents a product mockup background synced from Google Drive
type MockupAsset struct {
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	ProductSlug string `json:"productSlug"`
	Side        Side   `json:"side"`
	ImageURL    string `json:"imageUrl"`
}

// MockupSyncResponse is the response for the mockup sync endpoint
type MockupSyncResponse struct {
	Assets   []MockupAsset `json:"assets"`
	Inserted int           `json:"inserted"`
	Skipped  int           `json:"skipped"`
	Total    int           `json:"total"`
}
