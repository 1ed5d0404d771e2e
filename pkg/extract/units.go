package extract

import (
	"regexp"
	"strings"
)

// knownUnits is the fixed vocabulary of laboratory unit strings recognized by
// the line matchers. Order matters: the list is compiled into a regex
// alternation, so longer spellings that share a prefix with shorter ones
// ("million/uL" vs "mIU/mL") must come first.
var knownUnits = []string{
	"million/uL", "million/cumm",
	"mill/cumm", "mil/cmm", "mil/cumm",
	"cells/uL", "cells/cumm",
	"thou/uL", "thou/cumm",
	"x10^3/uL", "x10^6/uL",
	"mIU/mL", "uIU/mL", "mIU/L",
	"mL/min/1.73m2", "mL/min",
	"mEq/L", "meq/l",
	"mmol/L", "umol/L", "nmol/L", "pmol/L",
	"mg/dL", "mg/dl", "mg/L",
	"g/dL", "g/dl", "g/L",
	"gm/dL", "gm/dl", "gm%",
	"ng/mL", "ng/ml", "ng/dL", "ng/dl",
	"pg/mL", "pg/ml",
	"ug/dL", "ug/dl",
	"U/L", "u/l", "IU/L", "IU/mL",
	"mm/hr", "mm/1st hr",
	"fL", "fl", "pg",
	"sec", "%",
}

// unitAlternation is the regex fragment matching any known unit.
var unitAlternation = buildUnitAlternation()

func buildUnitAlternation() string {
	quoted := make([]string, len(knownUnits))
	for i, unit := range knownUnits {
		quoted[i] = regexp.QuoteMeta(unit)
	}
	return strings.Join(quoted, "|")
}
