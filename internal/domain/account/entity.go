package account

// Account is one row of the roster served by the external accounts
// service. Only the fields the payroll pipeline consumes are decoded.
type Account struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position"`
	Role      string `json:"role"`
}

func (a Account) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
