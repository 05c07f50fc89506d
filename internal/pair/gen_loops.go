//go:build ignore

// gen_loops writes kernel_gen.go: one force loop per kernel and variant,
// each calling its kernel's methods on a concrete receiver.
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"text/template"
)

type kernel struct {
	Type    string
	Charged bool
}

type variant struct {
	Name    string
	Index   string
	Newton  bool
	Virial  bool
	Energy  bool
	Comment string
}

var kernels = []kernel{
	{"ljCutKernel", true},
	{"charmmKernel", true},
	{"charmmLongKernel", true},
	{"class2Kernel", true},
	{"buckKernel", false},
}

var variants = []variant{
	{"forceOff", "0", false, false, false, "forces only"},
	{"forceNewton", "variantNewton", true, false, false, "forces only, newton on"},
	{"virialOff", "variantEV", false, true, false, "forces and virial"},
	{"virialNewton", "variantEV|variantNewton", true, true, false, "forces and virial, newton on"},
	{"energyOff", "variantEV|variantEnergy", false, true, true, "forces, energy and virial"},
	{"energyNewton", "variantEV|variantEnergy|variantNewton", true, true, true, "forces, energy and virial, newton on"},
}

var tmpl = template.Must(template.New("loops").Parse(`// Code generated by gen_loops.go; DO NOT EDIT.

package pair

import "github.com/san-kum/pairsim/internal/compute"
{{range $k := .Kernels}}
func (k {{$k.Type}}) loops() [numVariants]loopFunc {
	var l [numVariants]loopFunc
{{- range $.Variants}}
	l[{{.Index}}] = k.{{.Name}}
{{- end}}
	l[variantEnergy] = l[variantEV|variantEnergy]
	l[variantEnergy|variantNewton] = l[variantEV|variantEnergy|variantNewton]
	return l
}
{{range $v := $.Variants}}
// {{$v.Name}}: {{$v.Comment}}.
func (k {{$k.Type}}) {{$v.Name}}(r *region, s compute.Span, f []float64, {{if $v.Virial}}p{{else}}_{{end}} *Partial) {
	x, typ := r.x, r.typ
{{- if $k.Charged}}
	q := r.q
{{- end}}
	for ii := s.Lo; ii < s.Hi; ii++ {
		i, row := r.list.Neighbors(ii)
{{- if $k.Charged}}
		qi := r.qqrd2e * q[i]
{{- end}}
		xi, yi, zi := x[3*i], x[3*i+1], x[3*i+2]
		itype := typ[i]
		var fxi, fyi, fzi float64

		for _, e := range row {
			j := e.J
			dx := xi - x[3*j]
			dy := yi - x[3*j+1]
			dz := zi - x[3*j+2]
			rsq := dx*dx + dy*dy + dz*dz
			jtype := typ[j]
			if rsq >= k.cutsq(itype, jtype) {
				continue
			}

			fc, flj := r.special.For(e)
{{- if $k.Charged}}
			qq := qi * q[j]
{{- else}}
			const qq = 0.0
{{- end}}
			fpair := k.force(itype, jtype, rsq, qq, fc, flj)

			fxi += dx * fpair
			fyi += dy * fpair
			fzi += dz * fpair
{{- if $v.Newton}}
			f[3*j] -= dx * fpair
			f[3*j+1] -= dy * fpair
			f[3*j+2] -= dz * fpair
{{- else}}
{{- if $v.Virial}}
			own := j < r.nlocal
			if own {
{{- else}}
			if j < r.nlocal {
{{- end}}
				f[3*j] -= dx * fpair
				f[3*j+1] -= dy * fpair
				f[3*j+2] -= dz * fpair
			}
{{- end}}
{{- if $v.Energy}}

			evdwl, ecoul := k.energy(itype, jtype, rsq, qq, fc, flj)
			p.addEnergy(i, j, {{if $v.Newton}}true{{else}}own{{end}}, evdwl, ecoul)
{{- end}}
{{- if $v.Virial}}
			p.addVirial(i, j, {{if $v.Newton}}true{{else}}own{{end}}, fpair, dx, dy, dz)
{{- end}}
		}

		f[3*i] += fxi
		f[3*i+1] += fyi
		f[3*i+2] += fzi
	}
}
{{end}}{{end}}`))

func main() {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Kernels  []kernel
		Variants []variant
	}{kernels, variants})
	if err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("kernel_gen.go", src, 0644); err != nil {
		log.Fatal(err)
	}
}
