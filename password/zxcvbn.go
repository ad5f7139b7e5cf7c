package password

import "github.com/nbutton23/zxcvbn-go"

// zxcvbnEstimator delegates scoring to the zxcvbn crack-time model, the
// same estimator the settings screen displays a meter for.
type zxcvbnEstimator struct{}

func (zxcvbnEstimator) Score(pw string) int {
	return zxcvbn.PasswordStrength(pw, nil).Score
}
