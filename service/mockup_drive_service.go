package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"winshirt/models"
	"winshirt/utils"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// MockupDriveService lists product mockup backgrounds maintained in a Google
// Drive folder. Implements MockupDriveServiceInterface.
type MockupDriveService struct {
	client *drive.Service
}

// NewMockupDriveService creates a new MockupDriveService
// credentialsPath should be the path to the Service Account JSON file
func NewMockupDriveService(credentialsPath string) (*MockupDriveService, error) {
	ctx := context.Background()

	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &MockupDriveService{
		client: driveService,
	}, nil
}

// Ensure MockupDriveService implements MockupDriveServiceInterface
var _ MockupDriveServiceInterface = (*MockupDriveService)(nil)

// ListMockupAssets lists all image files in a Google Drive folder and parses
// them into mockup assets. Files that do not follow the PRODUCTSLUG_SIDE
// naming are skipped with a warning.
func (ds *MockupDriveService) ListMockupAssets(folderID string) ([]models.MockupAsset, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	imageMimeTypes := map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
	}

	var assets []models.MockupAsset
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		parsed, err := utils.ParseMockupFileName(file.Name)
		if err != nil {
			log.Printf("warning: failed to parse mockup filename %s: %v", file.Name, err)
			continue
		}

		parsed.DriveFileID = file.Id
		parsed.ImageURL = fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id)

		assets = append(assets, *parsed)
	}

	return assets, nil
}
