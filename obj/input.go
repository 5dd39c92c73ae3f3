package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the sampled state of the logical actions for one frame. The
// session layer reads these once per update; nothing else polls the keyboard.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// MoveY is -1 for up, 0 for none, +1 for down (menus only; gameplay
	// vertical movement comes from jumping).
	MoveY float64
	// JumpPressed is true on the frame the jump key is pressed.
	JumpPressed bool
	// JumpHeld is true while the jump key is held down.
	JumpHeld bool
	// DashPressed is true on the frame the dash key is pressed.
	DashPressed bool
	// ConfirmPressed is true on the frame enter/space confirm is pressed.
	ConfirmPressed bool
	// CancelPressed is true on the frame escape is pressed.
	CancelPressed bool
	// ResetPressed is true on the frame the reset key (R) is pressed.
	ResetPressed bool
	// DebugPressed toggles debug drawing (F1).
	DebugPressed bool
	// LeaderboardPressed opens the leaderboard screen (L).
	LeaderboardPressed bool
	// UpPressed/DownPressed are single-frame menu navigation edges.
	UpPressed   bool
	DownPressed bool
	// BackspacePressed is a single-frame edge used during name entry.
	BackspacePressed bool
	// Typed holds printable characters typed this frame, for name entry.
	Typed []rune
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and refreshes the logical action states.
func (i *Input) Update() {
	var moveX, moveY float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		moveY += 1
	}
	i.MoveX = moveX
	i.MoveY = moveY

	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.JumpHeld = ebiten.IsKeyPressed(ebiten.KeySpace)
	i.DashPressed = inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)
	i.ConfirmPressed = inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	i.CancelPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	i.LeaderboardPressed = inpututil.IsKeyJustPressed(ebiten.KeyL)
	i.UpPressed = inpututil.IsKeyJustPressed(ebiten.KeyUp)
	i.DownPressed = inpututil.IsKeyJustPressed(ebiten.KeyDown)
	i.BackspacePressed = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
	i.Typed = ebiten.AppendInputChars(i.Typed[:0])
}

// AnyConfirm reports a confirm-like press: enter, space or jump.
func (i *Input) AnyConfirm() bool {
	return i.ConfirmPressed || i.JumpPressed
}
