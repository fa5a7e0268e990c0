package balance

import "errors"

// ErrSelectorOutOfRange is returned by ValidateSelector.
var ErrSelectorOutOfRange = errors.New("balance: selector out of range for this space's dimension")
