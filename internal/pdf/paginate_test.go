package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testRaster(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode raster: %v", err)
	}
	return buf.Bytes()
}

func TestPaginatePNGSinglePage(t *testing.T) {
	doc, pages, err := PaginatePNG(testRaster(t, PageWidthPx, 600))
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("empty pdf")
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("output does not look like a pdf: %q", doc[:8])
	}
	if pages != 1 {
		t.Fatalf("pages = %d, want 1", pages)
	}
}

func TestPaginatePNGMultiPage(t *testing.T) {
	// two full pages plus a short tail
	height := PageHeightPx*2 + 200
	doc, pages, err := PaginatePNG(testRaster(t, PageWidthPx, height))
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("empty pdf")
	}
	if pages != 3 {
		t.Fatalf("pages = %d, want 3", pages)
	}
	if got := PageCount(PageWidthPx, height); got != pages {
		t.Fatalf("PageCount = %d, want %d", got, pages)
	}
}

func TestPaginatePNGHighDensityRaster(t *testing.T) {
	// a 2x capture: twice the pixels, same page geometry
	width := PageWidthPx * 2
	height := PageHeightPx*2*2 + 400
	doc, pages, err := PaginatePNG(testRaster(t, width, height))
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("empty pdf")
	}
	if pages != 3 {
		t.Fatalf("pages = %d, want 3", pages)
	}
}

func TestPaginatePNGRejectsGarbage(t *testing.T) {
	if _, _, err := PaginatePNG([]byte("not a png")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		width, height, want int
	}{
		{PageWidthPx, 1, 1},
		{PageWidthPx, PageHeightPx, 1},
		{PageWidthPx, PageHeightPx + 1, 2},
		{PageWidthPx, PageHeightPx * 3, 3},
		{PageWidthPx * 2, PageHeightPx * 2, 1},
		{0, 100, 0},
		{100, 0, 0},
	}
	for _, tc := range cases {
		if got := PageCount(tc.width, tc.height); got != tc.want {
			t.Fatalf("PageCount(%d, %d) = %d, want %d", tc.width, tc.height, got, tc.want)
		}
	}
}
