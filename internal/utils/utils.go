package utils

import (
	"net/url"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	taobaoItemMatcher = regexp2.MustCompile(`^(https?://)?item\.taobao\.com/item\.htm\?id=[a-zA-Z0-9]+`, 0)
	jdItemMatcher     = regexp2.MustCompile(`^(https?://)?item\.jd\.com/[a-zA-Z0-9]+\.html`, 0)
	taobaoIDMatcher   = regexp2.MustCompile(`(?<=item\.htm\?id=)[a-zA-Z0-9]+`, 0)
	jdSkuMatcher      = regexp2.MustCompile(`(?<=item\.jd\.com/)[a-zA-Z0-9]+(?=\.html)`, 0)
)

// knownBrands are matched against listing titles, most specific first.
var knownBrands = []string{
	"ASUS", "MSI", "Gigabyte", "Colorful", "GALAX", "ZOTAC", "MAXSUN", "Yeston",
	"Intel", "AMD", "NVIDIA", "Kingston", "Corsair", "Samsung", "Seasonic",
}

func MatchTaobaoItemURL(URL string) bool {
	match, _ := taobaoItemMatcher.MatchString(URL)

	return match
}

func MatchJDItemURL(URL string) bool {
	match, _ := jdItemMatcher.MatchString(URL)

	return match
}

// ExtractTaobaoItemID pulls the item id out of a Taobao item URL.
func ExtractTaobaoItemID(URL string) string {
	if URL == "" {
		return ""
	}
	m, err := taobaoIDMatcher.FindStringMatch(URL)
	if err != nil || m == nil {
		return ""
	}
	return m.String()
}

// ExtractJDSkuID pulls the SKU id out of a JD item URL.
func ExtractJDSkuID(URL string) string {
	if URL == "" {
		return ""
	}
	m, err := jdSkuMatcher.FindStringMatch(URL)
	if err != nil || m == nil {
		return ""
	}
	return m.String()
}

// ExtractBrand finds the first known brand mentioned in a listing title.
func ExtractBrand(title string) string {
	for _, brand := range knownBrands {
		if strings.Contains(title, brand) {
			return brand
		}
	}
	return "Unknown"
}

// ExtractModel takes the second whitespace token of a listing title,
// which is where both platforms put the model designation.
func ExtractModel(title string) string {
	parts := strings.Fields(title)
	if len(parts) < 2 {
		return "Unknown"
	}
	return parts[1]
}

// BuildTaobaoSearchURL builds the platform search URL for a query.
func BuildTaobaoSearchURL(query string) string {
	return "https://s.taobao.com/search?q=" + url.QueryEscape(query)
}

// BuildJDSearchURL builds the platform search URL for a query.
func BuildJDSearchURL(query string) string {
	return "https://search.jd.com/Search?keyword=" + url.QueryEscape(query)
}
