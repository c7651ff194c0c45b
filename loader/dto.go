// SPDX-License-Identifier: MIT

package loader

// YAMLNetwork is the top-level document.
type YAMLNetwork struct {
	Stations []YAMLStation `yaml:"stations" validate:"required,min=1,dive"`
	Lines    []YAMLLine    `yaml:"lines" validate:"dive"`
}

// YAMLStation is one entry of the station table.
type YAMLStation struct {
	ID   int64  `yaml:"id" validate:"required,gt=0"`
	Name string `yaml:"name" validate:"required"`
}

// YAMLLine is one line with its ordered sections.
type YAMLLine struct {
	ID       int64         `yaml:"id" validate:"required,gt=0"`
	Name     string        `yaml:"name" validate:"required"`
	Color    string        `yaml:"color"`
	Sections []YAMLSection `yaml:"sections" validate:"required,min=1,dive"`
}

// YAMLSection references stations by ID.
type YAMLSection struct {
	Up       int64 `yaml:"up" validate:"required,gt=0"`
	Down     int64 `yaml:"down" validate:"required,gt=0,nefield=Up"`
	Distance int64 `yaml:"distance" validate:"required,gt=0"`
}
