// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"strconv"
	"text/template"
)

func templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"floatFormat": floatFormat,
	}
}

func floatFormat(val float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, val)
}

func radiusFormat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
