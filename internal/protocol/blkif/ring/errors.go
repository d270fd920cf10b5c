package ring

import "fmt"

// Ring-codec errors are all bounds/shape violations the caller is
// responsible for — the protocol itself never produces a decode error
// for unknown tags (those degrade to absent, per spec §7).

func errSegCountMismatch(nrSegs, got int) error {
	return fmt.Errorf("nr_segs=%d but %d segments supplied", nrSegs, got)
}

func errTooManySegments(n int) error {
	return fmt.Errorf("nr_segs=%d exceeds direct segment limit %d", n, SegmentsPerRequest)
}

func errTooManyGrefs(n int) error {
	return fmt.Errorf("%d grant references exceeds indirect limit %d", n, GrantRefsPerIndirectRequest)
}

func errGrefsOverflow(n, available int) error {
	return fmt.Errorf("need %d grant references (%d bytes) but only %d bytes available", n, n*GrantRefSize, available)
}

func errHeaderLayout(want, got int) error {
	return fmt.Errorf("internal error: indirect header layout mismatch: want %d bytes, wrote %d", want, got)
}
