package game

import "testing"

func TestPursuerSpeed_Priority(t *testing.T) {
	g := defaultGrid()
	p := &Pursuer{}
	p.PlaceAt(Tile{0, g.TunnelRow()}, DirLeft)

	cases := []struct {
		name string
		mode PursuerMode
		mul  float64
		want float64
	}{
		{"returning ignores tunnel and multiplier", ModeReturning, 1.2, pursuerReturnSpeed},
		{"evading outranks tunnel", ModeEvading, 1.0, pursuerEvasionSpeed},
		{"tunnel outranks base", ModeFollowingGlobal, 1.0, pursuerTunnelSpeed},
	}
	for _, tc := range cases {
		p.Mode = tc.mode
		if got := p.speed(g, tc.mul); got != tc.want {
			t.Errorf("%s: speed = %.2f, want %.2f", tc.name, got, tc.want)
		}
	}

	// Off the tunnel cell the same mode runs at base speed.
	p.PlaceAt(Tile{1, g.TunnelRow()}, DirLeft)
	p.Mode = ModeFollowingGlobal
	if got := p.speed(g, 1.0); got != pursuerBaseSpeed {
		t.Errorf("corridor speed = %.2f, want base %.2f", got, pursuerBaseSpeed)
	}
}

func TestPlayerSpeed_Priority(t *testing.T) {
	g := defaultGrid()
	p := NewPlayer(g)

	p.eatingSlow = true
	if got := p.speed(true, 1.0); got != playerEvasionSpeed {
		t.Errorf("evasion speed while eating = %.2f, want %.2f", got, playerEvasionSpeed)
	}
	if got := p.speed(false, 1.0); got != playerEatingSpeed {
		t.Errorf("eating speed = %.2f, want %.2f", got, playerEatingSpeed)
	}
	p.eatingSlow = false
	if got := p.speed(false, 1.5); got != playerBaseSpeed*1.5 {
		t.Errorf("scaled base speed = %.2f, want %.2f", got, playerBaseSpeed*1.5)
	}
}
