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


package platform

import (
	"context"
	"slices"
	"time"

	"github.com/poiesic/recollect/core"
)

// SimulatedSource serves a fixed demo listing of saved posts. The upstream
// Graph API does not expose an account's saved posts, so demos and tests run
// against this source instead.
type SimulatedSource struct{}

var _ SavedPostSource = (*SimulatedSource)(nil)

// NewSimulatedSource creates a SavedPostSource backed by demo data.
func NewSimulatedSource() *SimulatedSource {
	return &SimulatedSource{}
}

// SavedPosts returns the same demo listing for every owner.
func (s *SimulatedSource) SavedPosts(ctx context.Context, owner string) ([]core.SavedPost, error) {
	return slices.Clone(simulatedPosts), nil
}

var simulatedPosts = []core.SavedPost{
	{
		Id:        "123456789",
		MediaType: core.MediaTypeImage,
		MediaURL:  "https://via.placeholder.com/600x400",
		Permalink: "https://www.instagram.com/p/sample1/",
		Timestamp: time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC),
	},
	{
		Id:        "987654321",
		MediaType: core.MediaTypeVideo,
		MediaURL:  "https://via.placeholder.com/600x400",
		Permalink: "https://www.instagram.com/p/sample2/",
		Timestamp: time.Date(2023, 2, 20, 15, 30, 0, 0, time.UTC),
	},
	{
		Id:        "456789123",
		MediaType: core.MediaTypeAlbum,
		MediaURL:  "https://via.placeholder.com/600x400",
		Permalink: "https://www.instagram.com/p/sample3/",
		Timestamp: time.Date(2023, 3, 10, 8, 45, 0, 0, time.UTC),
	},
	{
		Id:        "234567891",
		MediaType: core.MediaTypeImage,
		MediaURL:  "https://via.placeholder.com/600x400",
		Permalink: "https://www.instagram.com/p/sample4/",
		Timestamp: time.Date(2023, 4, 5, 9, 30, 0, 0, time.UTC),
	},
	{
		Id:        "345678912",
		MediaType: core.MediaTypeVideo,
		MediaURL:  "https://via.placeholder.com/600x400",
		Permalink: "https://www.instagram.com/p/sample5/",
		Timestamp: time.Date(2023, 5, 18, 14, 20, 0, 0, time.UTC),
	},
	{
		Id:        "567891234",
		MediaType: core.MediaTypeImage,
		MediaURL:  "https://via.placeholder.com/600x400",
		Permalink: "https://www.instagram.com/p/sample6/",
		Timestamp: time.Date(2023, 6, 22, 16, 45, 0, 0, time.UTC),
	},
}
