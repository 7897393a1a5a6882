package query

import (
	"testing"

	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

func TestMipLevelCountForMatchesLog2PlusOne(t *testing.T) {
	cases := []struct{ w, h, want uint32 }{
		{1, 1, 1},
		{2, 2, 2},
		{1920, 1080, 11},
		{1024, 1024, 11},
		{1023, 1, 10},
	}
	for _, c := range cases {
		if got := MipLevelCountFor(c.w, c.h); got != c.want {
			t.Errorf("MipLevelCountFor(%d, %d) = %d, want %d", c.w, c.h, got, c.want)
		}
	}
}

func TestHiZBufferInitializeBuildsTextureAndSRV(t *testing.T) {
	var builtMips uint32
	newTex := func(width, height, mipLevels uint32) (resource.Refcounted, error) {
		builtMips = mipLevels
		return newFakeHeap(), nil // any resource.Refcounted stands in for a texture here
	}
	newSRV := func(texture resource.Refcounted, mipLevels uint32) (resource.Refcounted, error) {
		return newFakeHeap(), nil
	}

	b := NewBuffer(newTex, newSRV)
	if err := b.Initialize(1920, 1080); err != nil {
		t.Fatal(err)
	}
	if b.MipLevelCount() != 11 || builtMips != 11 {
		t.Fatalf("MipLevelCount() = %d, builtMips = %d, want 11", b.MipLevelCount(), builtMips)
	}
	if b.Texture() == nil || b.SRV() == nil {
		t.Fatal("expected a non-nil texture and SRV after Initialize")
	}
}

func TestHiZBufferResizeIsNoOpAtSameDimensions(t *testing.T) {
	calls := 0
	newTex := func(width, height, mipLevels uint32) (resource.Refcounted, error) {
		calls++
		return newFakeHeap(), nil
	}
	newSRV := func(texture resource.Refcounted, mipLevels uint32) (resource.Refcounted, error) {
		return newFakeHeap(), nil
	}

	b := NewBuffer(newTex, newSRV)
	if err := b.Initialize(512, 512); err != nil {
		t.Fatal(err)
	}
	if err := b.Resize(512, 512); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("expected Resize at unchanged dimensions to skip rebuilding, got %d builds", calls)
	}

	if err := b.Resize(1024, 512); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Fatalf("expected Resize at new dimensions to rebuild, got %d builds", calls)
	}
}

func TestHiZBufferGenerateRunsReduceForEveryMipLevel(t *testing.T) {
	newTex := func(width, height, mipLevels uint32) (resource.Refcounted, error) { return newFakeHeap(), nil }
	newSRV := func(texture resource.Refcounted, mipLevels uint32) (resource.Refcounted, error) { return newFakeHeap(), nil }

	b := NewBuffer(newTex, newSRV)
	if err := b.Initialize(4, 4); err != nil {
		t.Fatal(err)
	}

	var levels []uint32
	depth := newFakeHeap()
	err := b.Generate(nil, depth, func(ctx queue.ComputeContext, depthBuffer, hiZTexture resource.Refcounted, level uint32) error {
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(levels) != int(b.MipLevelCount()) {
		t.Fatalf("expected reduce to run once per mip level (%d), got %d calls", b.MipLevelCount(), len(levels))
	}
	for i, level := range levels {
		if level != uint32(i) {
			t.Fatalf("expected levels in order 0..n-1, got %v", levels)
		}
	}
}
