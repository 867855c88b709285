// Package svg 把王国的村庄分布画成正方形 SVG 地图。
package svg

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	svgo "github.com/ajstarks/svgo"

	"KingdomsMap/internal/plan"
	"KingdomsMap/internal/world/entity"
	"KingdomsMap/modules/kit/errx"
)

const (
	CodeGroupNotFound errx.Code = "RENDER_GROUP_NOT_FOUND"

	DefaultSize = 1024
	labelArea   = 40
	maxTicks    = 10
)

var ErrGroupNotFound = errx.NewBiz(CodeGroupNotFound, "王国不存在")

type Options struct {
	Size int // 画布边长 px
}

type layer struct {
	entry    plan.Entry
	villages []entity.Village
}

// Render 先把所有名字解析成王国，任何一个不存在都直接返回错误，不输出半张图。
// 后出现的条目覆盖先出现的。
func Render(w io.Writer, world *entity.GameWorld, entries []plan.Entry, opts Options) error {
	layers, err := resolve(world, entries)
	if err != nil {
		return err
	}

	size := opts.Size
	if size <= labelArea*2 {
		size = DefaultSize
	}
	radius := max(world.Radius, 1)
	plot := size - labelArea
	// 世界坐标 [-r, r] 映射到 plot 像素，y 轴向上
	scale := float64(plot) / float64(2*radius)
	cx := labelArea + plot/2
	cy := plot / 2

	bw := bufio.NewWriter(w)
	canvas := svgo.New(bw)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:white")

	drawMesh(canvas, radius, scale, plot, cx, cy)

	// 村庄坐标放大 2 倍后用整数表示 1×1 方块的边界
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d) scale(%s,%s)",
		cx, cy, ftoa(scale/2), ftoa(-scale/2)))
	for _, l := range layers {
		canvas.Gstyle("fill:" + l.entry.Color.Hex())
		canvas.Title(l.entry.Name)
		for _, v := range l.villages {
			canvas.Rect(2*v.Coord.X-1, 2*v.Coord.Y-1, 2, 2)
		}
		canvas.Gend()
	}
	canvas.Gend()

	canvas.End()
	return bw.Flush()
}

// RenderFile 写临时文件后改名，失败时不留下残缺文件。
func RenderFile(path string, world *entity.GameWorld, entries []plan.Entry, opts Options) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".map-*.svg")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := Render(tmp, world, entries, opts); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func resolve(world *entity.GameWorld, entries []plan.Entry) ([]layer, error) {
	idx := entity.NewNameIndex(world.Kingdoms)
	layers := make([]layer, 0, len(entries))
	for _, e := range entries {
		kid, ok := idx.Lookup(e.Name)
		if !ok {
			return nil, ErrGroupNotFound.WithMsgf("kingdom %q not found", e.Name).WithData("name", e.Name)
		}
		layers = append(layers, layer{entry: e, villages: world.KingdomVillages(kid)})
	}
	return layers, nil
}

func drawMesh(canvas *svgo.SVG, radius int, scale float64, plot, cx, cy int) {
	step := tickStep(2 * radius)
	first := -radius / step * step

	canvas.Gstyle("stroke:#e0e0e0;stroke-width:1")
	for t := first; t <= radius; t += step {
		px := cx + int(math.Round(float64(t)*scale))
		py := cy - int(math.Round(float64(t)*scale))
		canvas.Line(px, 0, px, plot)
		canvas.Line(labelArea, py, labelArea+plot, py)
	}
	canvas.Gend()
	canvas.Rect(labelArea, 0, plot, plot, "fill:none;stroke:black;stroke-width:1")

	canvas.Gstyle("font-family:sans-serif;font-size:11px;fill:black")
	for t := first; t <= radius; t += step {
		px := cx + int(math.Round(float64(t)*scale))
		py := cy - int(math.Round(float64(t)*scale))
		canvas.Text(px, plot+16, strconv.Itoa(t), "text-anchor:middle")
		canvas.Text(labelArea-4, py+4, strconv.Itoa(t), "text-anchor:end")
	}
	canvas.Gend()
}

// tickStep 取 1、2、5 乘 10 的幂中最小的一个，使刻度数不超过 maxTicks。
func tickStep(span int) int {
	if span <= 0 {
		return 1
	}
	for mag := 1; ; mag *= 10 {
		for _, m := range []int{1, 2, 5} {
			if step := m * mag; span/step <= maxTicks {
				return step
			}
		}
	}
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
