// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Product types
const (
	ProductTypeCourse   = "course"
	ProductTypeEbook    = "ebook"
	ProductTypeTemplate = "template"
	ProductTypeOther    = "other"
)

// ProductTypes lists the product types in form order.
var ProductTypes = []string{ProductTypeCourse, ProductTypeEbook, ProductTypeTemplate, ProductTypeOther}

// Currencies
const (
	CurrencyVND = "VND"
	CurrencyUSD = "USD"
)

// Currencies lists the accepted price currencies.
var Currencies = []string{CurrencyVND, CurrencyUSD}

// Product defaults applied to an empty form.
const (
	DefaultCurrency    = CurrencyVND
	DefaultProductType = ProductTypeCourse
)

// ProductFields is the editable form of a store product.
type ProductFields struct {
	NameEN        string  `json:"name_en"`
	NameVN        string  `json:"name_vn"`
	Slug          string  `json:"slug"`
	DescriptionEN string  `json:"description_en"`
	DescriptionVN string  `json:"description_vn"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Image         string  `json:"image"`
	FileURL       string  `json:"file_url"`
	ProductType   string  `json:"product_type"`
	Published     bool    `json:"published"`
}

// NewProductFields returns an empty product form with default currency and type.
func NewProductFields() ProductFields {
	return ProductFields{Currency: DefaultCurrency, ProductType: DefaultProductType}
}

// Validate implements validation.Validatable.
func (f ProductFields) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.NameEN, validation.Required, validation.RuneLength(0, 300)),
		validation.Field(&f.NameVN, validation.RuneLength(0, 300)),
		validation.Field(&f.Slug, validation.Required, validation.RuneLength(0, 200), slugRule),
		validation.Field(&f.Price, validation.Min(0.0)),
		validation.Field(&f.Currency, validation.Required, validation.In(toAny(Currencies)...)),
		validation.Field(&f.ProductType, validation.Required, validation.In(toAny(ProductTypes)...)),
		validation.Field(&f.Image, linkRule),
		validation.Field(&f.FileURL, linkRule),
	)
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Trimmed returns the fields with surrounding whitespace removed.
// An empty currency or product type falls back to the default.
func (f ProductFields) Trimmed() ProductFields {
	f.NameEN = strings.TrimSpace(f.NameEN)
	f.NameVN = strings.TrimSpace(f.NameVN)
	f.Slug = strings.TrimSpace(f.Slug)
	f.DescriptionEN = strings.TrimSpace(f.DescriptionEN)
	f.DescriptionVN = strings.TrimSpace(f.DescriptionVN)
	f.Currency = strings.ToUpper(strings.TrimSpace(f.Currency))
	f.Image = strings.TrimSpace(f.Image)
	f.FileURL = strings.TrimSpace(f.FileURL)
	f.ProductType = strings.ToLower(strings.TrimSpace(f.ProductType))
	if f.Currency == "" {
		f.Currency = DefaultCurrency
	}
	if f.ProductType == "" {
		f.ProductType = DefaultProductType
	}
	return f
}
