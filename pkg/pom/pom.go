package pom

import (
	"encoding/xml"
	"strings"
)

// XML mapping of the POM elements this package consumes. Unknown elements
// are ignored; the upstream schema is not validated here.

type pomProject struct {
	XMLName     xml.Name   `xml:"project"`
	GroupID     string     `xml:"groupId"`
	ArtifactID  string     `xml:"artifactId"`
	Version     string     `xml:"version"`
	Packaging   string     `xml:"packaging"`
	Name        string     `xml:"name"`
	Description string     `xml:"description"`
	URL         string     `xml:"url"`
	Parent      *pomParent `xml:"parent"`

	Properties   pomProperties   `xml:"properties"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
	Licenses     []pomLicense    `xml:"licenses>license"`

	DependencyManagement struct {
		Dependencies []pomDependency `xml:"dependencies>dependency"`
	} `xml:"dependencyManagement"`

	DistributionManagement struct {
		Relocation *pomRelocation `xml:"relocation"`
	} `xml:"distributionManagement"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomDependency struct {
	GroupID    string         `xml:"groupId"`
	ArtifactID string         `xml:"artifactId"`
	Version    string         `xml:"version"`
	Scope      string         `xml:"scope"`
	Classifier string         `xml:"classifier"`
	Type       string         `xml:"type"`
	Optional   string         `xml:"optional"`
	Exclusions *pomExclusions `xml:"exclusions"`
}

// pomExclusions is a pointer target so a present-but-empty <exclusions>
// element can be told apart from a missing one. Both fall back to dependency
// management, but the distinction is part of the observed Maven behavior and
// kept explicit here.
type pomExclusions struct {
	Exclusions []pomExclusion `xml:"exclusion"`
}

type pomExclusion struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

type pomRelocation struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomLicense struct {
	Name string `xml:"name"`
	URL  string `xml:"url"`
}

// pomProperties decodes the free-form <properties> element into a map.
type pomProperties map[string]string

func (p *pomProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	m := make(map[string]string)
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &el); err != nil {
				return err
			}
			m[el.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			if el.Name == start.Name {
				*p = m
				return nil
			}
		}
	}
}
