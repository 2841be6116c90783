package price

import "errors"

var ErrUnknownCoin = errors.New("unknown coin")
