package transit

import "fmt"

// Network is a transit operator. Its title may be empty.
type Network struct {
	id    NetworkID
	title string
}

func NewNetwork(id NetworkID, title string) Network {
	return Network{id: id, title: title}
}

func (n Network) ID() NetworkID { return n.id }
func (n Network) Title() string { return n.title }

func (n Network) IsValid() bool { return n.id.IsValid() }

func (n Network) IsEqualForTesting(other Network) bool { return n == other }

func (n Network) String() string {
	return fmt.Sprintf("Network [id: %d, title: %q]", n.id, n.title)
}
