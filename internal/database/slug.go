package database

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// UniqueSlug derives a URL-safe slug from source and makes it unique within
// the given model's table by suffixing a counter (vendor, vendor-2, ...).
// Slugs are assigned once at creation and never regenerated implicitly.
func UniqueSlug(tx *gorm.DB, model interface{}, source string) (string, error) {
	base := slug.Make(source)
	if base == "" {
		base = fallbackSlug(tx, model)
	}

	candidate := base
	for n := 2; ; n++ {
		var count int64
		if err := tx.Model(model).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

// fallbackSlug names the slug after the model's table when the source text
// slugifies to nothing (symbols-only names).
func fallbackSlug(tx *gorm.DB, model interface{}) string {
	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(model); err != nil || stmt.Table == "" {
		return "record"
	}
	return strings.TrimSuffix(stmt.Table, "s")
}
