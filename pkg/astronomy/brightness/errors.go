package brightness

import errorsmod "cosmossdk.io/errors"

// Codespace is the error codespace for brightness model errors
const Codespace = "cometmag"

var (
	ErrInvalidGroup      = errorsmod.Register(Codespace, 2, "invalid oort group")
	ErrInvalidArc        = errorsmod.Register(Codespace, 3, "invalid orbital arc")
	ErrInvalidDistance   = errorsmod.Register(Codespace, 4, "invalid heliocentric distance")
	ErrInvalidParameters = errorsmod.Register(Codespace, 5, "invalid brightening parameters")
)
