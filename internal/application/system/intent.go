package system

// Intent represents an action the player wants to perform this tick
type Intent interface {
	isIntent()
}

// MoveIntent sets horizontal movement; Dir is -1, 0 or 1
type MoveIntent struct {
	Dir int
}

func (MoveIntent) isIntent() {}

// JumpIntent requests a jump
type JumpIntent struct{}

func (JumpIntent) isIntent() {}

// AttackIntent requests a sword swing
type AttackIntent struct{}

func (AttackIntent) isIntent() {}

// InteractIntent opens or closes the shop when one is in range
type InteractIntent struct{}

func (InteractIntent) isIntent() {}

// PurchaseIntent buys one tier of an attribute in the open shop
type PurchaseIntent struct {
	Attr Attribute
}

func (PurchaseIntent) isIntent() {}
