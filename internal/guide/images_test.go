package guide

import (
	"reflect"
	"testing"
)

func img(w, h int) EmbeddedImage {
	return EmbeddedImage{Width: w, Height: h, Ext: "png"}
}

func TestSelectImagePair(t *testing.T) {
	tests := []struct {
		name   string
		images []EmbeddedImage
		want   []EmbeddedImage
	}{
		{
			name:   "top two by area",
			images: []EmbeddedImage{img(500, 500), img(800, 800), img(100, 100), img(400, 500)},
			want:   []EmbeddedImage{img(800, 800), img(500, 500)},
		},
		{
			name:   "small images excluded",
			images: []EmbeddedImage{img(300, 300), img(100, 100)},
			want:   nil,
		},
		{
			name:   "skewed images excluded, bounds are strict",
			images: []EmbeddedImage{img(800, 400), img(350, 500), img(650, 500)},
			want:   nil,
		},
		{
			name:   "single survivor becomes the front",
			images: []EmbeddedImage{img(400, 500), img(2000, 200)},
			want:   []EmbeddedImage{img(400, 500)},
		},
		{
			name:   "zero height excluded",
			images: []EmbeddedImage{img(400, 0)},
			want:   nil,
		},
		{
			name:   "no images",
			images: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectImagePair(tt.images)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SelectImagePair = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSelectImagePairTieOrder(t *testing.T) {
	a := EmbeddedImage{Width: 400, Height: 400, Ext: "png"}
	b := EmbeddedImage{Width: 400, Height: 400, Ext: "jpg"}
	got := SelectImagePair([]EmbeddedImage{a, b})
	if len(got) != 2 || got[0].Ext != "png" || got[1].Ext != "jpg" {
		t.Errorf("equal areas should keep extraction order, got %+v", got)
	}
}
