// Command strview inspects text through the fixedstring type: byte
// layout, rune boundaries, ASCII folding, and the wire encoding.
//
// Usage:
//
//	strview -s "héllo" [-cap 16] [-plain]
//	strview -i [-cap 16]   (interactive mode)
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/fixedstring"
)

var capacities = []int{8, 16, 32, 64, 128, 256}

func main() {
	var (
		content     = flag.String("s", "", "Content to inspect")
		capacity    = flag.Int("cap", 16, "Fixed capacity in bytes (8, 16, 32, 64, 128, 256)")
		plain       = flag.Bool("plain", false, "Force unstyled output")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(*capacity); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *content == "" && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: strview -s <text> [-cap N] [-plain]")
		fmt.Fprintln(os.Stderr, "       strview -i [-cap N]  (interactive mode)")
		os.Exit(1)
	}
	if *content == "" {
		*content = strings.Join(flag.Args(), " ")
	}

	rep, err := inspectAt(*capacity, *content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	styled := !*plain && term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Print(rep.render(styled))
}

// report is everything the renderers need about one inspected string.
type report struct {
	rejectErr  error // construction failure, nil on success
	content    string
	upper      string
	lower      string
	encoded    []byte
	boundaries []bool // per content byte: starts a rune
	length     int
	capacity   int
	maxEncoded int
	ascii      bool
}

// inspectAt dispatches the runtime capacity choice onto the compile-time
// backing array types the tool supports.
func inspectAt(capacity int, content string) (report, error) {
	switch capacity {
	case 8:
		return inspect[[8]byte](content), nil
	case 16:
		return inspect[[16]byte](content), nil
	case 32:
		return inspect[[32]byte](content), nil
	case 64:
		return inspect[[64]byte](content), nil
	case 128:
		return inspect[[128]byte](content), nil
	case 256:
		return inspect[[256]byte](content), nil
	default:
		return report{}, fmt.Errorf("unsupported capacity %d (choose from %v)", capacity, capacities)
	}
}

func inspect[A any](content string) report {
	rep := report{
		content:    content,
		capacity:   fixedstring.Cap[A](),
		maxEncoded: fixedstring.MaxEncodedSize[A](),
	}

	s, err := fixedstring.New[A](content)
	if err != nil {
		rep.rejectErr = err
		return rep
	}

	rep.length = s.Len()
	rep.ascii = s.IsASCII()
	rep.boundaries = make([]bool, s.Len())
	for off := range s.Runes() {
		rep.boundaries[off] = true
	}

	up := s
	up.MakeASCIIUppercase()
	rep.upper = up.String()

	low := s
	low.MakeASCIILowercase()
	rep.lower = low.String()

	rep.encoded, _ = s.MarshalBinary()
	return rep
}

func (r *report) render(styled bool) string {
	var b strings.Builder

	if styled {
		return r.renderStyled()
	}

	if r.rejectErr != nil {
		fmt.Fprintf(&b, "rejected: %v\n", r.rejectErr)
		return b.String()
	}

	fmt.Fprintf(&b, "content:  %q\n", r.content)
	fmt.Fprintf(&b, "length:   %d/%d bytes, ascii=%v\n", r.length, r.capacity, r.ascii)
	fmt.Fprintf(&b, "bytes:    % x\n", []byte(r.content))
	fmt.Fprintf(&b, "bounds:   %s\n", boundaryRow(r.boundaries))
	fmt.Fprintf(&b, "upper:    %q\n", r.upper)
	fmt.Fprintf(&b, "lower:    %q\n", r.lower)
	fmt.Fprintf(&b, "wire:     % x (%d bytes, max %d)\n", r.encoded, len(r.encoded), r.maxEncoded)
	return b.String()
}

// boundaryRow marks rune starts with ^ under the hex byte dump.
func boundaryRow(boundaries []bool) string {
	marks := make([]string, len(boundaries))
	for i, start := range boundaries {
		if start {
			marks[i] = "^ "
		} else {
			marks[i] = ". "
		}
	}
	return strings.Join(marks, " ")
}
