package combat

import (
	"math"
)

const (
	// GuaranteedBallModifier marks a capture device that never fails.
	GuaranteedBallModifier = 255.0

	// CaptureThreshold is the capture value at or above which a capture
	// succeeds without shake trials.
	CaptureThreshold = 255.0

	// ShakeTrials is the number of shakes a capture must survive.
	ShakeTrials = 4

	// GuaranteedShakes is the shake count reported for captures that skip
	// the shake trials.
	GuaranteedShakes = 3

	shakeRange = 65536
)

// CaptureResult is the outcome of one capture attempt.
type CaptureResult struct {
	Success  bool
	Shakes   int
	Messages []string
}

// CaptureValue computes the modified catch rate
//
//	a = ((3*maxHP - 2*HP) * catchRate * ball * status) / (3*maxHP)
//
// A target without max HP yields 0.
func CaptureValue(target *Combatant, ballModifier, statusModifier float64) float64 {
	maxHP := float64(target.MaxHP())
	if maxHP <= 0 {
		return 0
	}
	hp := float64(target.HP)
	return ((3*maxHP - 2*hp) * float64(target.CatchRate) * ballModifier * statusModifier) / (3 * maxHP)
}

// ShakeThreshold computes b = floor(1048560 / sqrt(sqrt(16711680 / a))).
// A non-positive a yields 0, which fails every shake.
func ShakeThreshold(a float64) int {
	if a <= 0 {
		return 0
	}
	return int(math.Floor(1048560 / math.Sqrt(math.Sqrt(16711680/a))))
}

// AttemptCapture tries to catch target. The ball and status modifiers are
// resolved by the caller. Up to four shake trials are drawn; the capture
// succeeds only if all four pass.
func AttemptCapture(target *Combatant, ballModifier, statusModifier float64, rng RNG) CaptureResult {
	caught := CaptureResult{
		Success:  true,
		Shakes:   GuaranteedShakes,
		Messages: []string{"Gotcha! " + target.Name + " was caught!"},
	}

	if ballModifier >= GuaranteedBallModifier {
		return caught
	}

	a := CaptureValue(target, ballModifier, statusModifier)
	if a >= CaptureThreshold {
		return caught
	}

	b := ShakeThreshold(a)
	shakes := 0
	for shakes < ShakeTrials && rng.Intn(shakeRange) < b {
		shakes++
	}

	if shakes == ShakeTrials {
		caught.Shakes = shakes
		return caught
	}
	return CaptureResult{
		Success:  false,
		Shakes:   shakes,
		Messages: []string{escapeMessage(target.Name, shakes)},
	}
}

func escapeMessage(name string, shakes int) string {
	switch shakes {
	case 0:
		return "Oh no! " + name + " broke free!"
	case 1:
		return "Aww! It appeared to be caught!"
	case 2:
		return "Aargh! Almost had it!"
	default:
		return "Shoot! It was so close, too!"
	}
}
