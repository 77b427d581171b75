package token

import (
	"fmt"
	"sort"
)

// PosDoc records newline offsets of a document so offsets can be turned
// into line and column numbers on demand.
type PosDoc struct {
	d []byte
	n []int
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] >= i {
		return
	}
	if p.d[i] != '\n' {
		panic("newline offset does not point to a newline")
	}
	p.n = append(p.n, i)
}

// LineCol returns the zero based line and column of offset off.  Only
// newlines already seen by the scanner are taken into account.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) String() string {
	if p == nil {
		return "<unknown position>"
	}
	l, c := p.LineCol()
	return fmt.Sprintf("line %d, col %d", l+1, c+1)
}
