// Package enrichment turns saved media into text and suggestions. The
// Orchestrator runs one payload through OCR or transcription and then
// classification; the BatchProcessor applies it across an owner's saved
// posts on a worker pool.
package enrichment
