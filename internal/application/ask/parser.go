package ask

import (
	"regexp"
	"strconv"
	"strings"
)

// CompareOp operador numérico extraído de la consulta.
type CompareOp string

const (
	OpNone    CompareOp = ""
	OpBetween CompareOp = "between"
	OpLE      CompareOp = "le"
	OpGE      CompareOp = "ge"
	OpEQ      CompareOp = "eq"
)

// Comparator comparador numérico: para OpBetween aplican Low y High, para el
// resto solo Low.
type Comparator struct {
	Op   CompareOp
	Low  int
	High int
}

// Kind dominio de la consulta.
type Kind string

const (
	KindBulkPallets    Kind = "bulk_pallets"
	KindBulkEmptySlots Kind = "bulk_empty_slots"
	KindDuplicates     Kind = "duplicates"
	KindDuplicateByID  Kind = "duplicate_detail"
	KindPartialBins    Kind = "partial_bins"
	KindFullBins       Kind = "full_bins"
	KindRackMulti      Kind = "rack_multi"
	KindDamaged        Kind = "damaged"
	KindMissing        Kind = "missing"
	KindPalletLookup   Kind = "pallet_lookup"
	KindLotLookup      Kind = "lot_lookup"
	KindSkuLookup      Kind = "sku_lookup"
	KindLocationLookup Kind = "location_lookup"
	KindFallback       Kind = "fallback"
	KindHelp           Kind = "help"
)

// Query consulta interpretada. Arg lleva el pallet id, lot, sku, fragmento de
// ubicación o prefijo de pasillo según el Kind.
type Query struct {
	Kind Kind
	Cmp  Comparator
	Arg  string
	Raw  string
}

var (
	betweenRe = regexp.MustCompile(`between\s+(\d+)\s+and\s+(\d+)`)
	leRe      = regexp.MustCompile(`or\s+less|at\s+most|<=|≤`)
	geRe      = regexp.MustCompile(`or\s+more|at\s+least|>=|≥`)
	eqRe      = regexp.MustCompile(`\bexactly\b|\bequals?\s+to\b|==`)
	numRe     = regexp.MustCompile(`\d+`)

	palletRe = regexp.MustCompile(`(?i)(?:pallet\s+id|pallet)\s+([A-Za-z0-9\-]+)`)
	lotRe    = regexp.MustCompile(`(?i)(?:lot\s+number|lot)\s+(\d+)`)
	skuRe    = regexp.MustCompile(`(?i)sku\s+([A-Za-z0-9\-]+)`)
	locRe    = regexp.MustCompile(`(?i)(?:location|bin)\s+(?:contains|like)\s+([A-Za-z0-9\-]+)`)
	aisleRe  = regexp.MustCompile(`aisle\s+(\d{3})`)
)

func numbers(s string) []int {
	matches := numRe.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err == nil {
			out = append(out, n)
		}
	}
	return out
}

func maxOf(nums []int) int {
	best := 0
	for _, n := range nums {
		if n > best {
			best = n
		}
	}
	return best
}

// ParseComparator extrae el comparador numérico de la consulta ya en minúsculas.
// Un número suelto sin palabra clave se interpreta como igualdad.
func ParseComparator(ql string) Comparator {
	if m := betweenRe.FindStringSubmatch(ql); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		if a > b {
			a, b = b, a
		}
		return Comparator{Op: OpBetween, Low: a, High: b}
	}
	if leRe.MatchString(ql) {
		return Comparator{Op: OpLE, Low: maxOf(numbers(ql))}
	}
	if geRe.MatchString(ql) {
		return Comparator{Op: OpGE, Low: maxOf(numbers(ql))}
	}
	if eqRe.MatchString(ql) {
		nums := numbers(ql)
		if len(nums) > 0 {
			return Comparator{Op: OpEQ, Low: nums[0]}
		}
		return Comparator{Op: OpEQ}
	}
	if nums := numbers(ql); len(nums) > 0 {
		return Comparator{Op: OpEQ, Low: nums[0]}
	}
	return Comparator{}
}

// Matches evalúa el comparador contra un valor. Sin operador acepta todo.
func (c Comparator) Matches(n int) bool {
	switch c.Op {
	case OpBetween:
		return n >= c.Low && n <= c.High
	case OpLE:
		return n <= c.Low
	case OpGE:
		return n >= c.Low
	case OpEQ:
		return n == c.Low
	default:
		return true
	}
}

// Parse clasifica la consulta en lenguaje natural. El orden de los dominios
// importa: bulk gana sobre duplicados, duplicados sobre parciales, y así.
func Parse(q string) Query {
	raw := strings.TrimSpace(q)
	ql := strings.ToLower(raw)
	if ql == "" {
		return Query{Kind: KindHelp, Raw: raw}
	}

	if strings.Contains(ql, "bulk") {
		cmp := ParseComparator(ql)
		if strings.Contains(ql, "empty slot") || strings.Contains(ql, "available") {
			return Query{Kind: KindBulkEmptySlots, Cmp: cmp, Raw: raw}
		}
		return Query{Kind: KindBulkPallets, Cmp: cmp, Raw: raw}
	}

	if strings.Contains(ql, "duplicate") {
		if m := palletRe.FindStringSubmatch(raw); m != nil {
			return Query{Kind: KindDuplicateByID, Arg: strings.ToUpper(strings.TrimSpace(m[1])), Raw: raw}
		}
		return Query{Kind: KindDuplicates, Raw: raw}
	}

	if strings.Contains(ql, "partial") {
		if m := aisleRe.FindStringSubmatch(ql); m != nil {
			return Query{Kind: KindPartialBins, Arg: m[1], Raw: raw}
		}
		return Query{Kind: KindPartialBins, Raw: raw}
	}
	if strings.Contains(ql, "full") && strings.Contains(ql, "bin") {
		return Query{Kind: KindFullBins, Raw: raw}
	}
	if strings.Contains(ql, "rack") &&
		(strings.Contains(ql, "multiple") || strings.Contains(ql, "more than one") || strings.Contains(ql, ">1")) {
		return Query{Kind: KindRackMulti, Raw: raw}
	}
	if strings.Contains(ql, "damage") {
		return Query{Kind: KindDamaged, Raw: raw}
	}
	if strings.Contains(ql, "missing") {
		return Query{Kind: KindMissing, Raw: raw}
	}

	if m := palletRe.FindStringSubmatch(raw); m != nil {
		return Query{Kind: KindPalletLookup, Arg: m[1], Raw: raw}
	}
	if m := lotRe.FindStringSubmatch(raw); m != nil {
		return Query{Kind: KindLotLookup, Arg: m[1], Raw: raw}
	}
	if m := skuRe.FindStringSubmatch(raw); m != nil {
		return Query{Kind: KindSkuLookup, Arg: m[1], Raw: raw}
	}
	if m := locRe.FindStringSubmatch(raw); m != nil {
		return Query{Kind: KindLocationLookup, Arg: m[1], Raw: raw}
	}

	return Query{Kind: KindFallback, Arg: raw, Raw: raw}
}
