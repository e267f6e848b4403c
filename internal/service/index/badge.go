package index

import "strings"

// badgeColors は拡張子ごとのBootstrap色クラス
var badgeColors = map[string]string{
	"zip":     "primary",
	"tif":     "info",
	"tiff":    "info",
	"geotiff": "info",
	"jpg":     "info",
	"jpeg":    "info",
	"png":     "info",
	"csv":     "success",
	"pdf":     "danger",
	"json":    "dark",
	"geojson": "dark",
	"xml":     "secondary",
	"gdb":     "warning",
	"fgdb":    "warning",
	"shp":     "warning",
	"dbf":     "warning",
	"prj":     "warning",
	"shx":     "warning",
}

// badgeLabels は大文字化だけでは表記が崩れる拡張子の表示名
var badgeLabels = map[string]string{
	"tif":     "TIF",
	"tiff":    "TIFF",
	"geotiff": "GeoTIFF",
	"geojson": "GEOJSON",
}

// BadgeFor はファイル名から種別バッジを決定する
func BadgeFor(name string) Badge {
	ext := ExtOf(name)

	label, ok := badgeLabels[ext]
	if !ok {
		if ext == "" {
			label = "FILE"
		} else {
			label = strings.ToUpper(ext)
		}
	}

	color, ok := badgeColors[ext]
	if !ok {
		color = "secondary"
	}

	return Badge{Label: label, Color: color}
}
