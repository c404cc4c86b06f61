// Package crawler fetches hardware listings from the two supported
// e-commerce platforms. Live crawling goes through colly; the mock
// generator in mock.go produces catalog entries when live crawling is
// disabled.
package crawler

import (
	"errors"
	"strings"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
	"github.com/gofiber/fiber/v2/log"

	"github.com/nerabuild/NeraBuild-API/internal/models"
	"github.com/nerabuild/NeraBuild-API/internal/utils"
)

// Platform names accepted by Search.
const (
	PlatformTaobao = "taobao"
	PlatformJD     = "jd"
)

var ErrUnknownPlatform = errors.New("unknown platform")

// Listing is one raw search result before conversion to a catalog item.
type Listing struct {
	ID       string
	Title    string
	Price    float64
	Currency string
	Shop     string
	URL      string
	Image    string
}

// Crawler wraps a colly collector configured for platform search pages.
type Crawler struct {
	Collector *colly.Collector
	Headers   map[string]map[string]string
}

// NewCrawler initializes a new Crawler. The collector runs async, allows
// URL revisits (search pages are re-crawled on every refresh), and starts
// with an empty global header set.
func NewCrawler() Crawler {
	col := colly.NewCollector()
	col.Async = true
	col.AllowURLRevisit = true

	c := Crawler{
		Collector: col,
	}
	c.Headers = map[string]map[string]string{
		"global": {},
	}

	return c
}

// UpdateHeaders updates the headers for the given site with the provided
// newHeaders map, on top of the "global" set. It also installs the header
// hook on the collector.
func (c *Crawler) UpdateHeaders(site string, newHeaders map[string]string) {
	c.Headers[site] = newHeaders

	for k, v := range newHeaders {
		c.Headers[site][k] = v
	}

	c.Collector.OnRequest(func(r *colly.Request) {
		headers := c.Headers["global"]
		for k, v := range c.Headers[r.URL.Hostname()] {
			headers[k] = v
		}

		for k, v := range headers {
			if len(k) > 0 && len(v) > 0 {
				r.Headers.Set(k, v)
			}
		}
	})
}

func (c *Crawler) RandomizeUserAgent() {
	extensions.RandomUserAgent(c.Collector)
	c.Collector.OnRequest(func(r *colly.Request) {
		log.Info("User-Agent:", r.Headers.Get("User-Agent"))
	})
}

// Search crawls the platform's search page for the query and returns the
// listings it finds, cheapest first left to the caller.
func (c *Crawler) Search(platform, query string) ([]Listing, error) {
	switch platform {
	case PlatformTaobao:
		return c.searchTaobao(query)
	case PlatformJD:
		return c.searchJD(query)
	default:
		return nil, ErrUnknownPlatform
	}
}

func (c *Crawler) searchTaobao(query string) ([]Listing, error) {
	listings := []Listing{}

	c.Collector.OnHTML(".item", func(elem *colly.HTMLElement) {
		itemURL := absoluteURL(elem.ChildAttr(".title a", "href"))
		if !utils.MatchTaobaoItemURL(itemURL) {
			return
		}

		price, curr, err := models.ParsePrice(elem.ChildText(".price strong"))
		if err != nil {
			log.Warn("unparseable taobao price: ", err)
			return
		}

		listings = append(listings, Listing{
			ID:       utils.ExtractTaobaoItemID(itemURL),
			Title:    strings.TrimSpace(elem.ChildText(".title a")),
			Price:    price,
			Currency: curr,
			Shop:     strings.TrimSpace(elem.ChildText(".shopname")),
			URL:      itemURL,
			Image:    absoluteURL(elem.ChildAttr(".pic img", "src")),
		})
	})

	err := c.Collector.Visit(utils.BuildTaobaoSearchURL(query))
	c.Collector.Wait()

	if err != nil {
		return nil, err
	}

	return listings, nil
}

func (c *Crawler) searchJD(query string) ([]Listing, error) {
	listings := []Listing{}

	c.Collector.OnHTML(".gl-item", func(elem *colly.HTMLElement) {
		itemURL := absoluteURL(elem.ChildAttr(".p-name a", "href"))
		if !utils.MatchJDItemURL(itemURL) {
			return
		}

		price, curr, err := models.ParsePrice(elem.ChildText(".p-price i"))
		if err != nil {
			log.Warn("unparseable jd price: ", err)
			return
		}

		listings = append(listings, Listing{
			ID:       utils.ExtractJDSkuID(itemURL),
			Title:    strings.TrimSpace(elem.ChildText(".p-name em")),
			Price:    price,
			Currency: curr,
			Shop:     strings.TrimSpace(elem.ChildText(".p-shop a")),
			URL:      itemURL,
			Image:    absoluteURL(elem.ChildAttr(".p-img img", "src")),
		})
	})

	err := c.Collector.Visit(utils.BuildJDSearchURL(query))
	c.Collector.Wait()

	if err != nil {
		return nil, err
	}

	return listings, nil
}

// ToHardwareItem converts a listing into a catalog item for the given
// category. Brand and model come out of the listing title.
func (l Listing) ToHardwareItem(platform string, category models.Category) models.HardwareItem {
	item := models.HardwareItem{
		ID:       platform + "-" + string(category) + "-" + l.ID,
		Name:     l.Title,
		Brand:    utils.ExtractBrand(l.Title),
		Model:    utils.ExtractModel(l.Title),
		Category: category,
		Price:    l.Price,
		Image:    l.Image,
	}

	switch platform {
	case PlatformTaobao:
		item.Platform.Taobao = &models.TaobaoListing{
			ItemID:   l.ID,
			ShopName: l.Shop,
			URL:      l.URL,
		}
	case PlatformJD:
		item.Platform.JD = &models.JDListing{
			SkuID:    l.ID,
			ShopName: l.Shop,
			URL:      l.URL,
		}
	}

	return item
}

func absoluteURL(raw string) string {
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}
