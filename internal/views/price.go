// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package views

import (
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// priceLocale is used for every price regardless of the display language.
var priceLocale = language.Vietnamese

// FormatPrice formats amount in the Vietnamese number format with the
// currency symbol, e.g. "₫ 199.000". An unknown currency code is printed
// after the plain number.
func FormatPrice(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return strconv.FormatFloat(amount, 'f', -1, 64) + " " + code
	}
	p := message.NewPrinter(priceLocale)
	return p.Sprint(currency.NarrowSymbol(unit.Amount(amount)))
}
