// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reconcile

import "github.com/poiesic/recollect/core"

// Posts overlays stored enrichment state onto a saved-post listing.
//
// The result has exactly one PostView per post, in the listing's order; the
// records' order carries no meaning here. A post with a matching record (by
// ExternalPostId) is marked Processed and carries the record's derived
// fields; a post without one passes through unprocessed. Records without a
// matching post are ignored. Pure function: neither input is mutated.
func Posts(posts []core.SavedPost, records []*core.ContentRecord) []core.PostView {
	byExternalID := make(map[string]*core.ContentRecord, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		byExternalID[record.ExternalPostId] = record
	}

	views := make([]core.PostView, len(posts))
	for i, post := range posts {
		view := core.PostView{SavedPost: post}
		if record, ok := byExternalID[post.Id]; ok {
			view.Processed = true
			view.ExtractedText = record.ExtractedText
			view.Transcription = record.Transcription
			view.Categories = record.Categories
			view.Tags = record.Tags
		}
		views[i] = view
	}
	return views
}
