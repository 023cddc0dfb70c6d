package company

import (
	"fmt"
	"strings"
	"time"
)

// Contact holds the optional contact details of a customer company.
type Contact struct {
	Person  string
	Email   string
	Phone   string
	Address string
}

type Company struct {
	id        uint
	name      string
	contact   Contact
	createdAt time.Time
}

func NewCompany(name string, contact Contact) (*Company, error) {
	c := &Company{createdAt: time.Now()}
	if err := c.Replace(name, contact); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCompany(id uint, name string, contact Contact, createdAt time.Time) (*Company, error) {
	if id == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	return &Company{id: id, name: name, contact: contact, createdAt: createdAt}, nil
}

func (c *Company) ID() uint             { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) Contact() Contact     { return c.contact }
func (c *Company) CreatedAt() time.Time { return c.createdAt }

func (c *Company) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("company ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("company ID cannot be zero")
	}
	c.id = id
	return nil
}

// Replace overwrites the name and every contact field.
func (c *Company) Replace(name string, contact Contact) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	contact.Email = strings.TrimSpace(contact.Email)
	c.name = name
	c.contact = contact
	return nil
}
