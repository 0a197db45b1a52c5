package feed

// Wire types for the GDACS RSS document. GDACS extension elements live in the
// http://www.gdacs.org namespace; coordinates use the W3C WGS-84 vocabulary.

type rssDocument struct {
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title string    `xml:"title"`
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string        `xml:"title"`
	Description string        `xml:"description"`
	Link        string        `xml:"link"`
	EventID     string        `xml:"http://www.gdacs.org eventid"`
	EventType   string        `xml:"http://www.gdacs.org eventtype"`
	AlertLevel  string        `xml:"http://www.gdacs.org alertlevel"`
	Severity    string        `xml:"http://www.gdacs.org severity"`
	Population  rssPopulation `xml:"http://www.gdacs.org population"`
	ToDate      string        `xml:"http://www.gdacs.org todate"`
	Country     string        `xml:"http://www.gdacs.org country"`
	ISO3        string        `xml:"http://www.gdacs.org iso3"`
	Point       rssPoint      `xml:"http://www.w3.org/2003/01/geo/wgs84_pos# Point"`
}

// rssPopulation carries the affected-population estimate in its value
// attribute; the element text is a display string.
type rssPopulation struct {
	Value string `xml:"value,attr"`
	Text  string `xml:",chardata"`
}

type rssPoint struct {
	Lat  string `xml:"http://www.w3.org/2003/01/geo/wgs84_pos# lat"`
	Long string `xml:"http://www.w3.org/2003/01/geo/wgs84_pos# long"`
}
