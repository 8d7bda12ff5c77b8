package server

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Real GDP per Capita Covariates</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
section { margin-bottom: 2.5rem; }
label { margin-right: 1rem; }
img { max-width: 100%; border: 1px solid #ddd; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.25rem 0.6rem; }
td.value { color: #c00; }
</style>
</head>
<body>
<h1>Real GDP per Capita Covariates</h1>
<p>{{.Records}} records from <code>{{.Source}}</code></p>

<section id="profile">
<h2>Country Profile</h2>
<label>Country/Territory
<select name="entity">{{range .Countries}}<option{{if selected . $.Defaults.Profile}} selected{{end}}>{{.}}</option>{{end}}</select>
</label>
<table><tbody id="profile-body"></tbody></table>
</section>

<section id="compare">
<h2>Compare Countries</h2>
<label>Statistic
<select name="stat">{{range .Statistics}}<option{{if selected . $.Defaults.CompareStatistic}} selected{{end}}>{{.}}</option>{{end}}</select>
</label>
<label>Countries
<select name="country" multiple size="6">{{range .Countries}}<option{{if selected . $.Defaults.CompareEntities}} selected{{end}}>{{.}}</option>{{end}}</select>
</label>
<img data-chart="/chart/compare.png" alt="comparison">
</section>

<section id="distribution">
<h2>Worldwide Spread</h2>
<label>Statistic
<select name="stat">{{range .Statistics}}<option{{if selected . $.Defaults.Distribution}} selected{{end}}>{{.}}</option>{{end}}</select>
</label>
<img data-chart="/chart/histogram.png" alt="histogram">
<img data-chart="/chart/boxplot.png" alt="boxplot">
</section>

<section id="scatter">
<h2>Scatterplot</h2>
<label>X <select name="x">{{range .Statistics}}<option{{if selected . $.Defaults.ScatterX}} selected{{end}}>{{.}}</option>{{end}}</select></label>
<label>Y <select name="y">{{range .Statistics}}<option{{if selected . $.Defaults.ScatterY}} selected{{end}}>{{.}}</option>{{end}}</select></label>
<label><input type="checkbox" name="fit" value="true"{{if .Defaults.ScatterFit}} checked{{end}}> Linear fit</label>
<img data-chart="/chart/scatter.png" alt="scatterplot">
</section>

<section id="currency-query">
<h2>Countries by Currency</h2>
<label>Primary Currency
<select name="code">{{range .Currencies}}<option{{if selected . $.Defaults.CurrencyQuery}} selected{{end}}>{{.}}</option>{{end}}</select>
</label>
<table><thead id="currency-head"></thead><tbody id="currency-body"></tbody></table>
</section>

<section id="currency">
<h2>Currency Comparison</h2>
<label>A <select name="a">{{range .Currencies}}<option{{if selected . $.Defaults.CurrencyCompareA}} selected{{end}}>{{.}}</option>{{end}}</select></label>
<label>B <select name="b">{{range .Currencies}}<option{{if selected . $.Defaults.CurrencyCompareB}} selected{{end}}>{{.}}</option>{{end}}</select></label>
<img data-chart="/chart/currency.png" alt="currency comparison">
</section>

<script>
function params(section) {
  const q = new URLSearchParams();
  section.querySelectorAll("select").forEach(sel => {
    if (sel.multiple) {
      q.append(sel.name, "");
      Array.from(sel.selectedOptions).forEach(o => q.append(sel.name, o.value));
    } else {
      q.set(sel.name, sel.value);
    }
  });
  section.querySelectorAll("input[type=checkbox]").forEach(cb => q.set(cb.name, cb.checked));
  return q;
}
function refresh(section) {
  const q = params(section);
  section.querySelectorAll("img[data-chart]").forEach(img => { img.src = img.dataset.chart + "?" + q; });
  if (section.id === "currency-query") {
    fillCurrency(q);
  }
  if (section.id === "profile") {
    fetch("/api/profile?" + q).then(r => r.json()).then(body => {
      const tb = document.getElementById("profile-body");
      tb.innerHTML = "";
      ((body.data && body.data.fields) || []).forEach(f => {
        const tr = document.createElement("tr");
        const k = document.createElement("th"); k.textContent = f.label;
        const v = document.createElement("td"); v.className = "value"; v.textContent = f.value;
        tr.append(k, v); tb.append(tr);
      });
    });
  }
}
function fillCurrency(q) {
  fetch("/api/currency?" + q).then(r => r.json()).then(body => {
    const head = document.getElementById("currency-head");
    const tb = document.getElementById("currency-body");
    head.innerHTML = "";
    tb.innerHTML = "";
    const rt = body.data || {};
    const hr = document.createElement("tr");
    (rt.columns || []).forEach(c => {
      const th = document.createElement("th"); th.textContent = c; hr.append(th);
    });
    head.append(hr);
    if (rt.empty) {
      const tr = document.createElement("tr");
      const td = document.createElement("td"); td.textContent = "no data";
      tr.append(td); tb.append(tr);
      return;
    }
    (rt.rows || []).forEach(row => {
      const tr = document.createElement("tr");
      row.forEach(cell => {
        const td = document.createElement("td"); td.textContent = cell; tr.append(td);
      });
      tb.append(tr);
    });
  });
}
document.querySelectorAll("section").forEach(section => {
  section.querySelectorAll("select, input").forEach(el => el.addEventListener("change", () => refresh(section)));
  refresh(section);
});
</script>
</body>
</html>
`
