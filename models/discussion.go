// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Discussion is a named thread grouping posts. It has no owner.
type Discussion struct {
	DiscussionID int64  `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
}

// TableName returns the name of the database table
// associated with the Discussion model.
func (d Discussion) TableName() string {
	return "discussions"
}
