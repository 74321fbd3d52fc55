// Package sitemap builds the sitemap.xml for the registered pages.
package sitemap

import (
	"encoding/xml"
	"strings"

	"github.com/wayfarer-travel/site/config"
	"github.com/wayfarer-travel/site/page"
)

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Build lists every page in reg under baseURL.
func Build(reg *page.Registry, baseURL, lastMod string) URLSet {
	baseURL = strings.TrimRight(baseURL, "/")
	set := URLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, id := range reg.IDs() {
		priority := "0.5"
		if id == config.DefaultPage {
			priority = "0.8"
		}
		set.URLs = append(set.URLs, URL{
			Loc:        baseURL + "/" + id,
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   priority,
		})
	}
	return set
}

// Marshal encodes set as an indented XML document with its declaration.
func Marshal(set URLSet) ([]byte, error) {
	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}
