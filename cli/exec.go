package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/seedcraft/hist"
	"github.com/nathoo/seedcraft/rng"
)

const (
	histSamples = 10000
	histBins    = 10
	histWidth   = 40
)

// Exec evaluates a single draw command against the engine and returns
// the output lines. Shared by the plain CLI and the TUI.
func Exec(e *rng.Engine, input string) []string {
	args := strings.Fields(input)
	if len(args) == 0 {
		return nil
	}
	cmd := strings.ToLower(args[0])
	rest := args[1:]

	switch cmd {
	case "help":
		return helpLines()

	case "value":
		return []string{formatFloat(e.Value())}

	case "signed":
		return []string{formatFloat(e.SignedValue())}

	case "raw":
		return []string{strconv.FormatInt(e.RawInt(), 10)}

	case "sign":
		return []string{fmt.Sprintf("%+d", e.Sign())}

	case "int":
		min, max, ok := twoInts(rest)
		if !ok {
			return usage("int <min> <max>")
		}
		if max <= min {
			return []string{"int: max must be greater than min"}
		}
		return []string{strconv.Itoa(e.IntRange(min, max))}

	case "range":
		min, max, ok := twoFloats(rest)
		if !ok {
			return usage("range <min> <max>")
		}
		if max < min {
			return []string{"range: max must not be below min"}
		}
		return []string{formatFloat(e.FloatRange(min, max))}

	case "vec4":
		min, max, ok := twoFloats(rest)
		if !ok {
			return usage("vec4 <min> <max>")
		}
		if max < min {
			return []string{"vec4: max must not be below min"}
		}
		v := e.Vec4Range(min, max)
		return []string{fmt.Sprintf("(%s, %s, %s, %s)",
			formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z), formatFloat(v.W))}

	case "jiggle":
		if len(rest) != 3 {
			return usage("jiggle <wx> <wy> <wz>")
		}
		wx, err1 := strconv.ParseFloat(rest[0], 64)
		wy, err2 := strconv.ParseFloat(rest[1], 64)
		wz, err3 := strconv.ParseFloat(rest[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return usage("jiggle <wx> <wy> <wz>")
		}
		v := e.Jiggle(wx, wy, wz)
		return []string{fmt.Sprintf("(%s, %s, %s)",
			formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))}

	case "bias":
		f, errLine := biasSampler(e, rest)
		if errLine != "" {
			return []string{errLine}
		}
		return []string{formatFloat(f())}

	case "weighted":
		f, errLine := weightedSampler(e, rest)
		if errLine != "" {
			return []string{errLine}
		}
		return []string{formatFloat(f())}

	case "extreme":
		f, errLine := extremeSampler(e, rest)
		if errLine != "" {
			return []string{errLine}
		}
		return []string{formatFloat(f())}

	case "color":
		if len(rest) != 4 {
			return usage("color <satMin> <satMax> <valMin> <valMax>")
		}
		var vals [4]float64
		for i, s := range rest {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return usage("color <satMin> <satMax> <valMin> <valMax>")
			}
			vals[i] = v
		}
		if vals[1] < vals[0] || vals[3] < vals[2] {
			return []string{"color: each max must not be below its min"}
		}
		c := e.ColorHSV(vals[0], vals[1], vals[2], vals[3])
		return []string{fmt.Sprintf("%s (r=%.3f g=%.3f b=%.3f)", c.Hex(), c.R, c.G, c.B)}

	case "grey":
		min, max, ok := twoFloats(rest)
		if !ok {
			return usage("grey <min> <max>")
		}
		if max < min {
			return []string{"grey: max must not be below min"}
		}
		c := e.Greyscale(min, max)
		return []string{fmt.Sprintf("%s (level=%.3f)", c.Hex(), c.R)}

	case "pick":
		if len(rest) == 0 {
			return usage("pick <item> [item...]")
		}
		return []string{rng.Pick(e, rest)}

	case "shuffle":
		if len(rest) == 0 {
			return usage("shuffle <item> [item...]")
		}
		items := append([]string(nil), rest...)
		rng.Shuffle(e, items)
		return []string{strings.Join(items, " ")}

	case "hist":
		f, errLine := parseSampler(e, rest)
		if errLine != "" {
			return []string{errLine}
		}
		h := hist.New(histBins)
		h.Fill(histSamples, f)
		out := h.Render(histWidth)
		out = append(out, fmt.Sprintf("n=%d mean=%.4f", h.Total(), h.Mean()))
		return out

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type help for available commands.", cmd)}
	}
}

// parseSampler builds a [0,1] sampler from a distribution argument, for the
// hist command: value | bias ... | weighted ... | extreme ...
func parseSampler(e *rng.Engine, args []string) (func() float64, string) {
	if len(args) == 0 {
		return nil, "usage: hist value | hist bias ... | hist weighted ... | hist extreme ..."
	}
	switch strings.ToLower(args[0]) {
	case "value":
		return e.Value, ""
	case "bias":
		return biasSampler(e, args[1:])
	case "weighted":
		return weightedSampler(e, args[1:])
	case "extreme":
		return extremeSampler(e, args[1:])
	default:
		return nil, fmt.Sprintf("hist: unknown distribution %q", args[0])
	}
}

func biasSampler(e *rng.Engine, args []string) (func() float64, string) {
	const use = "usage: bias <lower|upper|extremes|centre> <strength>"
	if len(args) != 2 {
		return nil, use
	}
	strength, err := strconv.ParseFloat(args[1], 64)
	if err != nil || strength < 0 || strength > 1 {
		return nil, "bias: strength must be a number in [0,1]"
	}
	switch strings.ToLower(args[0]) {
	case "lower":
		return func() float64 { return e.ValueBiasLower(strength) }, ""
	case "upper":
		return func() float64 { return e.ValueBiasUpper(strength) }, ""
	case "extremes":
		return func() float64 { return e.ValueBiasExtremes(strength) }, ""
	case "centre", "center":
		return func() float64 { return e.ValueBiasCentre(strength) }, ""
	default:
		return nil, use
	}
}

func weightedSampler(e *rng.Engine, args []string) (func() float64, string) {
	const use = "usage: weighted <none|lower|upper|centre|ends> [strength]"
	if len(args) < 1 || len(args) > 2 {
		return nil, use
	}
	w, ok := rng.ParseWeight(strings.ToLower(args[0]))
	if !ok {
		return nil, use
	}
	strength := rng.DefaultWeightStrength
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return nil, "weighted: strength must be a non-negative integer"
		}
		strength = n
	}
	return func() float64 { return e.WeightedValue(w, strength) }, ""
}

func extremeSampler(e *rng.Engine, args []string) (func() float64, string) {
	const use = "usage: extreme <n> <smallest|largest|centred>"
	if len(args) != 2 {
		return nil, use
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return nil, "extreme: n must be a positive integer"
	}
	kind, ok := rng.ParseExtreme(strings.ToLower(args[1]))
	if !ok {
		return nil, use
	}
	return func() float64 { return e.ExtremeOf(n, kind) }, ""
}

func twoInts(args []string) (int, int, bool) {
	if len(args) != 2 {
		return 0, 0, false
	}
	a, err1 := strconv.Atoi(args[0])
	b, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return a, b, true
}

func twoFloats(args []string) (float64, float64, bool) {
	if len(args) != 2 {
		return 0, 0, false
	}
	a, err1 := strconv.ParseFloat(args[0], 64)
	b, err2 := strconv.ParseFloat(args[1], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return a, b, true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func usage(u string) []string {
	return []string{"usage: " + u}
}

func helpLines() []string {
	return []string{
		"Draws:",
		"  value                  — uniform sample in [0,1]",
		"  signed                 — uniform sample in [-1,1]",
		"  int <min> <max>        — uniform integer in [min,max)",
		"  range <min> <max>      — uniform float in [min,max)",
		"  raw                    — raw 63-bit integer draw",
		"  sign                   — +1 or -1",
		"  bias <kind> <strength> — lower/upper/extremes/centre remap",
		"  weighted <cat> [s]     — none/lower/upper/centre/ends, min-of-(s+1)",
		"  extreme <n> <kind>     — smallest/largest/centred of n draws",
		"  vec4 <min> <max>       — four independent range draws",
		"  jiggle <wx> <wy> <wz>  — per-axis signed jitter",
		"  color <sMin> <sMax> <vMin> <vMax> — random HSV color",
		"  grey <min> <max>       — random greyscale level",
		"  pick <items...>        — pick one item",
		"  shuffle <items...>     — shuffled items",
		"  again (g)              — repeat your last draw command",
		"",
		"Analysis:",
		"  hist <dist...>         — 10,000-sample histogram of value/bias/weighted/extreme",
		"",
		"System:",
		"  /seed [n|string]       — reseed (no argument: system entropy)",
		"  /state                 — show seed and position",
		"  /save [name]           — save session (default: quicksave)",
		"  /load [name]           — load session (default: quicksave)",
		"  /help                  — show this help",
		"  /quit                  — exit",
	}
}
