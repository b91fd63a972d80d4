package mapview

type TileProvider struct {
	Name        string
	Attribution string
	URL         string
}

var tileProviders = []TileProvider{
	{
		Name:        "Google",
		Attribution: "&copy; Google Maps Satelite Tiles",
		URL:         "http://www.google.cn/maps/vt?lyrs=s@189&gl=cn&x={x}&y={y}&z={z}",
	},
	{
		Name:        "OpenStreetMap",
		Attribution: "&copy; OpenStreetMap contributors",
		URL:         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
	},
	{
		Name:        "CartoDB_Dark",
		Attribution: "&copy; CartoDB",
		URL:         "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png",
	},
}
