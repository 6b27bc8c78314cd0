package blocks

import (
	"html/template"
)

const markup = `
{{define "hero"}}<section class="hero hero--{{.Variant}}"{{with .Anchor}} id="{{.}}"{{end}}>
  {{- if eq .Variant "image-background"}}<div class="hero__backdrop" style="background-image: url('{{.S.image}}')"></div>{{end}}
  <div class="hero__body">
    <h1>{{.S.title}}</h1>
    {{with .S.subtitle}}<p class="hero__subtitle">{{.}}</p>{{end}}
    {{with .S.ctaText}}<a class="button" href="{{$.S.ctaLink}}">{{.}}</a>{{end}}
  </div>
  {{- if eq .Variant "split"}}{{with .S.image}}<img class="hero__media" src="{{.}}" alt="">{{end}}{{end}}
</section>{{end}}

{{define "features"}}<section class="features features--{{.Variant}}"{{with .Anchor}} id="{{.}}"{{end}}>
  {{with .S.title}}<h2>{{.}}</h2>{{end}}
  {{with .S.subtitle}}<p>{{.}}</p>{{end}}
  <div class="features__items">
  {{- range $i, $item := .Items}}
    <article class="feature{{if and (eq $.Variant "alternating") (odd $i)}} feature--reverse{{end}}">
      {{if $item.icon}}<span class="feature__icon" data-icon="{{$item.icon}}"></span>{{end}}
      <h3>{{$item.title}}</h3>
      <p>{{$item.description}}</p>
    </article>
  {{- end}}
  </div>
</section>{{end}}

{{define "testimonials"}}<section class="testimonials testimonials--{{.Variant}}"{{with .Anchor}} id="{{.}}"{{end}}>
  {{with .S.title}}<h2>{{.}}</h2>{{end}}
  <div class="testimonials__track"{{if eq .Variant "carousel"}} role="region" aria-roledescription="carousel"{{end}}>
  {{- range $i, $item := .Items}}{{if or (ne $.Variant "single") (eq $i 0)}}
    <figure class="testimonial">
      <blockquote>{{$item.quote}}</blockquote>
      <figcaption>{{$item.author}}{{with $item.role}}, {{.}}{{end}}</figcaption>
    </figure>
  {{- end}}{{end}}
  </div>
</section>{{end}}

{{define "accordion"}}<section class="accordion accordion--{{.Variant}}"{{with .Anchor}} id="{{.}}"{{end}}>
  {{with .S.title}}<h2>{{.}}</h2>{{end}}
  {{- range $i, $item := .Items}}
  <details class="accordion__item"{{if and (eq $i 0) (ne $.Variant "minimal")}} open{{end}}>
    <summary>{{if eq $.Variant "numbered"}}<span class="accordion__index">{{inc $i}}.</span> {{end}}{{if eq $.Variant "icon"}}<span class="accordion__icon" aria-hidden="true">+</span> {{end}}{{or $item.question $item.title}}</summary>
    <div class="accordion__content">{{or $item.answer $item.content}}</div>
  </details>
  {{- end}}
</section>{{end}}

{{define "tabs"}}<section class="tabs tabs--{{.Variant}}"{{with .Anchor}} id="{{.}}"{{end}}>
  {{with .S.title}}<h2>{{.}}</h2>{{end}}
  <div role="tablist"{{if eq .Variant "vertical"}} aria-orientation="vertical"{{end}}>
  {{- range $i, $item := .Items}}
    <button role="tab" id="{{$.ID}}-tab-{{$i}}" aria-controls="{{$.ID}}-panel-{{$i}}" aria-selected="{{if eq $i 0}}true{{else}}false{{end}}">{{$item.label}}</button>
  {{- end}}
  </div>
  {{- range $i, $item := .Items}}
  <div role="tabpanel" id="{{$.ID}}-panel-{{$i}}" aria-labelledby="{{$.ID}}-tab-{{$i}}"{{if ne $i 0}} hidden{{end}}>{{$item.content}}</div>
  {{- end}}
</section>{{end}}

{{define "cards"}}<section class="cards cards--{{.Variant}}"{{with .Anchor}} id="{{.}}"{{end}}>
  {{with .S.title}}<h2>{{.}}</h2>{{end}}
  <div class="cards__grid">
  {{- range .Items}}
    <article class="card">
      {{with .image}}<img src="{{.}}" alt="">{{end}}
      <h3>{{.title}}</h3>
      {{with .role}}<p class="card__role">{{.}}</p>{{end}}
      {{with .price}}<p class="card__price">{{.}}</p>{{end}}
      {{with .description}}<p>{{.}}</p>{{end}}
      {{with .link}}<a href="{{.}}">{{or $.S.linkText "Learn more"}}</a>{{end}}
    </article>
  {{- end}}
  </div>
</section>{{end}}
`

// Missing content keys render as empty rather than "<no value>".
var sectionTemplates = template.Must(template.New("blocks").Option("missingkey=zero").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"odd": func(i int) bool { return i%2 == 1 },
}).Parse(markup))
