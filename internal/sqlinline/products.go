package sqlinline

const QSelectProductsByOwner = `--sql bc097bcf-15ce-40ca-95ae-60f963bc9761
select id, owner_id, title, description, price, currency, amount,
       image_url, images, url, platform, created_at, updated_at
from products
where owner_id = $1::text
order by created_at desc;
`
