package format

var satuan = []string{
	"", "satu", "dua", "tiga", "empat", "lima",
	"enam", "tujuh", "delapan", "sembilan", "sepuluh", "sebelas",
}

// Terbilang spells n out in Indonesian words, as printed on payroll slips.
func Terbilang(n int64) string {
	if n == 0 {
		return "nol"
	}
	if n < 0 {
		// negate in uint64 so math.MinInt64 survives
		return "minus " + spell(uint64(-(n + 1))+1)
	}
	return spell(uint64(n))
}

func spell(n uint64) string {
	switch {
	case n < 12:
		return satuan[n]
	case n < 20:
		return spell(n-10) + " belas"
	case n < 100:
		return join(spell(n/10)+" puluh", spell(n%10))
	case n < 200:
		return join("seratus", spell(n-100))
	case n < 1000:
		return join(spell(n/100)+" ratus", spell(n%100))
	case n < 2000:
		return join("seribu", spell(n-1000))
	case n < 1_000_000:
		return join(spell(n/1000)+" ribu", spell(n%1000))
	case n < 1_000_000_000:
		return join(spell(n/1_000_000)+" juta", spell(n%1_000_000))
	case n < 1_000_000_000_000:
		return join(spell(n/1_000_000_000)+" miliar", spell(n%1_000_000_000))
	default:
		return join(spell(n/1_000_000_000_000)+" triliun", spell(n%1_000_000_000_000))
	}
}

func join(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + " " + tail
}
