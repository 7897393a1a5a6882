package upload

import (
	"testing"

	"github.com/gogpu/rhi/gpusync"
)

func newTestLoader(t *testing.T) *TextureLoader {
	t.Helper()
	syncHeap := NewHeap(newFakeBuffer(1<<16), 3)
	syncHeap.BeginFrame(0, 0)
	asyncHeap := NewHeap(newFakeBuffer(1<<16), 3)
	asyncHeap.BeginFrame(0, 0)
	copyQueue, _ := newFakeCopyQueue()
	async := NewAsyncManager(asyncHeap, copyQueue, gpusync.NewFence(nil))
	return NewTextureLoader(async, syncHeap)
}

func TestLoaderLoadFromMemoryUsesSyncHeap(t *testing.T) {
	l := newTestLoader(t)
	tex := newFakeTexture()
	ctx := &fakeContext{}

	data := make([]byte, 16*16*4)
	if err := l.LoadFromMemory(ctx, tex, data, 16, 16, 4); err != nil {
		t.Fatal(err)
	}
	if len(ctx.textureCopies) != 1 {
		t.Fatalf("expected one recorded texture copy, got %d", len(ctx.textureCopies))
	}
}

func TestLoaderLoadFromRawDataReturnsAsyncHandle(t *testing.T) {
	l := newTestLoader(t)
	tex := newFakeTexture()
	ctx := &fakeContext{}

	data := make([]byte, 8*8*4)
	handle, err := l.LoadFromRawData(ctx, tex, data, 8, 8, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !handle.IsValid() {
		t.Fatal("expected a valid async handle")
	}
}

func TestLoaderLoadFromMipDataUploadsEachLevel(t *testing.T) {
	l := newTestLoader(t)
	tex := newFakeTexture()
	ctx := &fakeContext{}

	mips := []MipLevelData{
		{Data: make([]byte, 16*16*4), Width: 16, Height: 16, RowPitch: 16 * 4},
		{Data: make([]byte, 8*8*4), Width: 8, Height: 8, RowPitch: 8 * 4},
	}
	handles, err := l.LoadFromMipData(ctx, tex, 4, mips)
	if err != nil {
		t.Fatal(err)
	}
	if len(handles) != 2 {
		t.Fatalf("expected 2 handles, one per mip level, got %d", len(handles))
	}
	if len(ctx.textureCopies) != 2 {
		t.Fatalf("expected 2 recorded texture copies, got %d", len(ctx.textureCopies))
	}
	if ctx.textureCopies[1].Dest.MipLevel != 1 {
		t.Fatalf("expected the second copy to target MipLevel 1, got %d", ctx.textureCopies[1].Dest.MipLevel)
	}
}

func TestLoaderGenerateMipmapsDefaultsToNilHook(t *testing.T) {
	l := newTestLoader(t)
	if l.GenerateMipmaps != nil {
		t.Fatal("expected GenerateMipmaps to default to nil — mip generation is a backend-dependent pass-through hook")
	}
}
