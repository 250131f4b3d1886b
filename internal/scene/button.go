package scene

// Button is one of the Game Boy's eight physical inputs, plus Pass - a
// no-op placeholder used to align the emulator loop's 60-frame scheduling
// cadence without actually pressing anything (see DESIGN.md's resolved
// Open Question on Pass).
type Button int

const (
	Pass Button = iota
	Up
	Down
	Left
	Right
	A
	B
	Start
	Select
)

func (b Button) String() string {
	switch b {
	case Pass:
		return "Pass"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case A:
		return "A"
	case B:
		return "B"
	case Start:
		return "Start"
	case Select:
		return "Select"
	default:
		return "Unknown"
	}
}
