package embedded

import (
	"testing"
	"testing/fstest"
)

// TestReadFile 测试初始化后按路径读取文件
func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/units.yaml": &fstest.MapFile{Data: []byte("player: {}\n")},
	})
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "标准路径", path: "data/units.yaml"},
		{name: "带 ./ 前缀", path: "./data/units.yaml"},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true},
		{name: "未知前缀", path: "assets/units.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != "player: {}\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}

	if !Exists("data/units.yaml") {
		t.Error("Exists should report data/units.yaml")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists should not report a missing file")
	}
}

// TestReadFileNotInitialized 测试未初始化时返回错误
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Fatal("Init(nil) should leave the package uninitialized")
	}
	if _, err := ReadFile("data/units.yaml"); err == nil {
		t.Error("ReadFile should fail before Init")
	}
}
