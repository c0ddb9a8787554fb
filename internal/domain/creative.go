package domain

import "time"

// Tipo do arquivo de criativo enviado pelo dealer.
type CreativeFileType string

const (
	CreativeFilePost  CreativeFileType = "post"
	CreativeFileStory CreativeFileType = "story"
)

// CreativeFile pertence a exatamente uma campanha; o binário fica no blob
// store e a linha guarda apenas a referência.
type CreativeFile struct {
	ID          string           `json:"id"`
	CampaignID  string           `json:"campaign_id"`
	FileName    string           `json:"file_name"`
	FileType    CreativeFileType `json:"file_type"`
	ContentType string           `json:"content_type"`
	SizeBytes   int64            `json:"size_bytes"`
	StorageKey  string           `json:"-"`
	URL         string           `json:"url"`
	UploadedAt  time.Time        `json:"uploaded_at"`
}
