package extraction

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// OCRExtractor calls an external OCR service. Extraction is never an error:
// any transport or decoding failure is logged and yields an empty record.
type OCRExtractor struct {
	client *resty.Client
	apiKey string
}

func NewOCRExtractor(baseURL, apiKey string) *OCRExtractor {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second)

	return &OCRExtractor{client: client, apiKey: apiKey}
}

func (o *OCRExtractor) Extract(docType string, knownName string) Record {
	var out Record

	resp, err := o.client.R().
		SetHeader("Authorization", "Bearer "+o.apiKey).
		SetBody(map[string]string{
			"doc_type":   docType,
			"known_name": knownName,
		}).
		SetResult(&out).
		Post("/extract")
	if err != nil {
		log.Printf("OCR extraction request failed for %s: %v", docType, err)
		return Record{}
	}

	if resp.IsError() {
		log.Printf("OCR extraction for %s returned status %d", docType, resp.StatusCode())
		return Record{}
	}

	if out == nil {
		return Record{}
	}
	return out
}
