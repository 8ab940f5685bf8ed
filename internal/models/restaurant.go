package models

import "github.com/jinzhu/gorm"

// Restaurant holds the single branding/profile row managed by the admin panel.
type Restaurant struct {
	gorm.Model
	NameTR  string `gorm:"not null"`
	NameEN  string
	AboutTR string
	AboutEN string
	Phone   string
	Address string
	Theme   string `gorm:"default:'light'"`
}

// Profile is the locale-resolved view of the restaurant identity,
// used in assistant prompts and page headers.
type Profile struct {
	Name    string
	About   string
	Phone   string
	Address string
}

// ProfileFor resolves the bilingual fields for one locale.
func (r *Restaurant) ProfileFor(locale Locale) Profile {
	p := Profile{Name: r.NameTR, About: r.AboutTR, Phone: r.Phone, Address: r.Address}
	if locale == LocaleEN {
		if r.NameEN != "" {
			p.Name = r.NameEN
		}
		if r.AboutEN != "" {
			p.About = r.AboutEN
		}
	}
	if p.About == "" {
		if locale == LocaleEN {
			p.About = "We serve delicious food"
		} else {
			p.About = "Lezzetli yemekler sunuyoruz"
		}
	}
	return p
}
