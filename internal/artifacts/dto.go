package artifacts

import "time"

// Metadata is the generation context of an artifact on the wire.
type Metadata struct {
	ProfileID   string    `json:"profileId"`
	JobAdID     string    `json:"jobAdId,omitempty"`
	Template    string    `json:"template"`
	Format      string    `json:"format"`
	IsGenerated bool      `json:"isGenerated"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FileResponse is the wire shape of one stored artifact.
type FileResponse struct {
	ID          string    `json:"fileId"`
	Filename    string    `json:"filename"`
	SizeBytes   int64     `json:"sizeBytes"`
	SortOrder   int       `json:"sortOrder"`
	UploadDate  time.Time `json:"uploadDate"`
	Metadata    Metadata  `json:"metadata"`
	ProfileName *string   `json:"profileName"`
	JobAdTitle  *string   `json:"jobAdTitle"`
}

func toFileResponse(item ListItem) FileResponse {
	return FileResponse{
		ID:         item.ID,
		Filename:   item.Filename,
		SizeBytes:  item.SizeBytes,
		SortOrder:  item.SortOrder,
		UploadDate: item.UploadDate,
		Metadata: Metadata{
			ProfileID:   item.ProfileID,
			JobAdID:     item.JobAdID,
			Template:    item.Template,
			Format:      item.Format,
			IsGenerated: item.IsGenerated,
			CreatedAt:   item.UploadDate,
		},
		ProfileName: item.ProfileName,
		JobAdTitle:  item.JobAdTitle,
	}
}
