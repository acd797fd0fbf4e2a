package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/reebtide/reeb"
)

// IPE writes g to w as a minimal IPE 7 document: one multi-segment path
// holding every tracker edge, and one "disk" mark per bifurcation point.
func IPE(w io.Writer, g *reeb.ReebGraph, opts ...Option) error {
	cfg := newConfig(opts)
	edges, marks, _, _ := layout(g, cfg)

	if _, err := fmt.Fprint(w, ipeHeader); err != nil {
		return err
	}

	if len(edges) > 0 {
		if _, err := fmt.Fprintln(w, `<path stroke="black">`); err != nil {
			return err
		}
		for _, e := range edges {
			if _, err := fmt.Fprintf(w, "%g %g m\n%g %g l\n", e.x1, e.y1, e.x2, e.y2); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, `</path>`); err != nil {
			return err
		}
	}

	for _, m := range marks {
		if _, err := fmt.Fprintf(w, `<use name="mark/disk(sx)" pos="%g %g" size="normal" stroke="red"/>`+"\n", m.x, m.y); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, ipeFooter)
	return err
}

const ipeHeader = `<?xml version="1.0"?>
<!DOCTYPE ipe SYSTEM "ipe.dtd">
<ipe version="70218" creator="reebtide">
<ipestyle name="basic"/>
<page>
`

const ipeFooter = `</page>
</ipe>
`
