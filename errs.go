package jolicitron

import "errors"

var ErrTrailingTokens = errors.New("trailing tokens")
