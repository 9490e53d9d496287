package game

// GlobalMode is the shared scatter/chase phase all non-evading, non-penned
// pursuers follow.
type GlobalMode uint8

const (
	ModeScatter GlobalMode = iota
	ModeChase
)

func (m GlobalMode) String() string {
	if m == ModeChase {
		return "chase"
	}
	return "scatter"
}

// phasePair is one scatter/chase cycle entry, durations in ticks. A chase
// duration of 0 means permanent chase.
type phasePair struct {
	scatter int
	chase   int
}

// phaseTable is the escalating global cycle: after the final entry's scatter
// elapses, chase never ends.
var phaseTable = [4]phasePair{
	{scatter: 420, chase: 1200},
	{scatter: 420, chase: 1200},
	{scatter: 300, chase: 1200},
	{scatter: 300, chase: 0},
}

const (
	strobeWindowTicks = 120 // evasion tail during which the strobe flag runs
	strobePeriodTicks = 10  // strobe toggle period
)

// ModeController owns the global phase cycle and the evasion (frightened)
// timer. While evasion is active the phase cycle is fully suspended: it
// neither advances nor resets.
type ModeController struct {
	phaseIndex int
	mode       GlobalMode
	ticksLeft  int
	permanent  bool // frozen in chase for the rest of the level

	evasionLeft int
	strobe      bool
}

// NewModeController starts at the first scatter phase.
func NewModeController() *ModeController {
	m := &ModeController{}
	m.Reset()
	return m
}

// Reset returns the cycle to the first scatter phase and clears evasion.
func (m *ModeController) Reset() {
	m.phaseIndex = 0
	m.mode = ModeScatter
	m.ticksLeft = phaseTable[0].scatter
	m.permanent = false
	m.evasionLeft = 0
	m.strobe = false
}

// Mode returns the current global phase.
func (m *ModeController) Mode() GlobalMode {
	return m.mode
}

// EvasionActive reports whether the evasion timer is running.
func (m *ModeController) EvasionActive() bool {
	return m.evasionLeft > 0
}

// EvasionLeft returns the remaining evasion ticks.
func (m *ModeController) EvasionLeft() int {
	return m.evasionLeft
}

// Strobe reports the imminent-end flash flag. Presentation only.
func (m *ModeController) Strobe() bool {
	return m.strobe
}

// StartEvasion arms the evasion timer. A zero or negative duration is a
// no-op: the energizer then has no mode effect.
func (m *ModeController) StartEvasion(ticks int) {
	if ticks <= 0 {
		return
	}
	m.evasionLeft = ticks
	m.strobe = false
}

// ClearEvasion cancels a running evasion timer without reporting an end
// transition. The suspended phase resumes where it stopped.
func (m *ModeController) ClearEvasion() {
	m.evasionLeft = 0
	m.strobe = false
}

// Tick advances the controller by one simulation tick and reports whether
// the evasion timer expired on this tick.
func (m *ModeController) Tick() (evasionEnded bool) {
	if m.evasionLeft > 0 {
		m.evasionLeft--
		if m.evasionLeft < strobeWindowTicks && m.evasionLeft%strobePeriodTicks == 0 {
			m.strobe = !m.strobe
		}
		if m.evasionLeft == 0 {
			m.strobe = false
			return true
		}
		return false
	}
	if m.permanent {
		return false
	}
	m.ticksLeft--
	if m.ticksLeft > 0 {
		return false
	}
	m.advancePhase()
	return false
}

func (m *ModeController) advancePhase() {
	if m.mode == ModeScatter {
		m.mode = ModeChase
		chase := phaseTable[m.phaseIndex].chase
		if chase == 0 {
			m.permanent = true
			return
		}
		m.ticksLeft = chase
		return
	}
	m.phaseIndex++
	if m.phaseIndex >= len(phaseTable) {
		// Unreachable while the table's last chase is permanent.
		m.phaseIndex = len(phaseTable) - 1
		m.permanent = true
		m.mode = ModeChase
		return
	}
	m.mode = ModeScatter
	m.ticksLeft = phaseTable[m.phaseIndex].scatter
}
